// Package richtext keeps a field's formatted question and its plain-text
// equivalent in lockstep. Surface models the structured editing area: every
// content change and formatting command re-derives sanitized HTML alongside
// its extracted text, so the two representations never drift. Sanitize
// restricts stored markup to an inline-formatting allow-list before anything
// is persisted or re-rendered.
package richtext
