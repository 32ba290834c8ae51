package instrument

import "strconv"

// ResolveName derives the descriptive name of loc. The rules are ordered:
// a named function expression bound to a variable reports its own name.
// A false result means the location must not be instrumented.
func ResolveName(loc Location) (string, bool) {
	if loc.IsCatchClause() {
		return CatchClauseName, true
	}

	for _, accessor := range []func() (string, bool){
		loc.OwnIdentifier,
		loc.ContainerIdentifier,
		loc.AssignmentPropertyName,
		loc.AssignmentIdentifierName,
		loc.OwnKeyName,
		loc.ParentKeyName,
	} {
		if name, ok := accessor(); ok && name != "" {
			return name, true
		}
	}

	if property, ok := loc.ParentCalleeProperty(); ok && property == "catch" {
		return RejectionHandlerName, true
	}

	if index, ok := loc.ListIndex(); ok {
		return arrayItemPrefix + strconv.Itoa(index), true
	}

	return "", false
}
