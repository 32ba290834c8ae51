package instrument

import "log/slog"

// TryInject prepends a logger call to the body of loc and reports whether
// it did. Missing names, bodies or positions, an existing logger call and an
// undecided method all leave the tree untouched.
func TryInject(loc Location, u *Unit) bool {
	log := u.logger()

	name, ok := ResolveName(loc)
	if !ok {
		log.Debug("skipping location without a name", slog.String("file", u.Filename))
		return false
	}

	body, ok := ResolveInsertionBody(loc)
	if !ok {
		log.Debug("skipping location without a block body", slog.String("file", u.Filename), slog.String("name", name))
		return false
	}

	// the body, not loc, since arrow chains move the effective site
	pos, ok := body.Position()
	if !ok {
		log.Debug("skipping location without position", slog.String("file", u.Filename), slog.String("name", name))
		return false
	}

	cfg := &u.Settings.Logging
	if HasLoggerCall(body, cfg.LoggerName) {
		log.Debug("skipping instrumented location", slog.String("file", u.Filename), slog.String("name", name))
		return false
	}

	known := KnownData{
		Name:   name,
		Source: u.Source,
		Line:   pos.Line,
		Column: pos.Column,
	}

	method := DecideMethod(loc, cfg, known)
	if method == "" {
		log.Debug("no logger method for location", slog.String("file", u.Filename), slog.String("name", name))
		return false
	}

	f := u.Factory
	call := f.CallExpression(
		f.MemberExpression(f.Identifier(cfg.LoggerName), f.Identifier(method)),
		BuildArguments(loc, known, f),
	)
	body.InsertStatementAtFront(f.ExpressionStatement(call))
	u.Inserted++

	log.Debug("inserted logger call",
		slog.String("file", u.Filename),
		slog.String("name", name),
		slog.String("method", method),
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column))

	return true
}
