// Package attr models the naming overrides attached to an enum and its
// variants: rename, rename_all and alias.
//
// Rename and RenameAll are tagged unions over four shapes:
//
//	Normal           one value used for both directions
//	SerializeOnly    a value for the serialize direction only
//	DeserializeOnly  a value for the deserialize direction only
//	Both             distinct values for each direction
//
// The "independent" constructors refuse a form that names neither direction,
// so every value of these types carries at least one side.
//
// Name resolution for a variant in one direction follows a fixed precedence:
// the variant-level Rename for that direction wins outright; otherwise the
// container RenameAll rule for that direction is applied to the identifier;
// otherwise the identifier is used as is.
package attr
