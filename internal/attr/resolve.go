package attr

// ResolveName returns the effective name of a variant for one direction.
//
// A variant-level rename for dir replaces the identifier entirely and is
// never combined with the container rule. Without one, the container rule
// for dir (if any) is applied to the identifier.
func ResolveName(dir Direction, ident string, rn *Rename, all *RenameAll) string {
	if rn != nil {
		if name, ok := rn.Name(dir); ok {
			return name
		}
	}

	return ApplyRenameAll(dir, ident, all)
}

// ApplyRenameAll applies only the container rule for dir to ident.
func ApplyRenameAll(dir Direction, ident string, all *RenameAll) string {
	if all != nil {
		if rule, ok := all.Rule(dir); ok {
			return rule.ApplyToVariant(ident)
		}
	}

	return ident
}
