package instrument

// ResolveInsertionBody finds the block a statement can be prepended to.
//
// The body member of loc is used when it is a block. When it is an arrow
// function (a => b => { ... }) the chain is followed; an arrow returning a
// bare expression (x => x + 1) has no insertion point.
func ResolveInsertionBody(loc Location) (Block, bool) {
	current := loc
	for {
		body, ok := current.Get("body")
		if !ok {
			return nil, false
		}
		if block, ok := body.AsBlock(); ok {
			return block, true
		}
		if !body.IsArrowFunction() {
			return nil, false
		}
		current = body
	}
}

// HasLoggerCall reports whether block already holds a statement of the form
// logger.method(...).
func HasLoggerCall(block Block, logger string) bool {
	for _, stmt := range block.Statements() {
		if object, ok := stmt.MemberCallObject(); ok && object == logger {
			return true
		}
	}
	return false
}
