package instrument

// BuildArguments returns the logger call arguments: the location string, the
// name, then the caught exception for catch clauses or the plain identifier
// parameters of a rejection handler.
func BuildArguments(loc Location, known KnownData, f Factory) []Node {
	args := []Node{
		f.StringLiteral(FormatLocation(known)),
		f.StringLiteral(known.Name),
	}

	switch {
	case loc.IsCatchClause():
		if param, ok := loc.CatchParam(); ok && param != "" {
			args = append(args, f.Identifier(param))
		}
	case known.Name == RejectionHandlerName:
		for _, param := range loc.Params() {
			if !param.Identifier {
				continue
			}
			args = append(args, f.Identifier(param.Name))
		}
	}

	return args
}
