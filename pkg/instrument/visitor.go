package instrument

// Generated is implemented by every host node handle.
type Generated interface {
	IsGenerated() bool
}

// IsEligible rejects generated nodes and files the unit's settings exclude.
func IsEligible(n Generated, u *Unit) bool {
	if n.IsGenerated() {
		return false
	}
	return u.Settings.Allows(u.Filename)
}

// ProgramEnter adds the logger import at the top of the unit. Nothing is
// added for the built-in logger, for a logger without import source, or
// when the logger name is already bound.
func ProgramEnter(p Program, u *Unit) bool {
	if u.Imported || !IsEligible(p, u) {
		return false
	}

	cfg := &u.Settings.Logging
	if cfg.UsesDefaultLogger() || cfg.ImportSource == "" {
		return false
	}
	if p.HasBinding(cfg.LoggerName) {
		return false
	}

	f := u.Factory
	p.InsertStatementAtFront(f.ImportDeclaration(
		[]Node{f.ImportDefaultSpecifier(f.Identifier(cfg.LoggerName))},
		f.StringLiteral(cfg.ImportSource),
	))
	u.Imported = true
	return true
}

// FunctionOrCatchEnter instruments a function or catch clause location.
func FunctionOrCatchEnter(loc Location, u *Unit) bool {
	if !IsEligible(loc, u) {
		return false
	}
	return TryInject(loc, u)
}
