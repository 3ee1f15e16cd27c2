// Package field defines the typed form-field model the builder packages
// operate on. Each Field carries a closed variant payload (Choice, FreeText,
// Section, Image) so only option-bearing variants can hold options and the
// section/image variants structurally lack a required flag. The flat Record
// type is the wire shape external consumers accept; Encode and Decode convert
// between the two without losing identifier stability.
package field
