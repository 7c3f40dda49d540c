package committer

import "cloud.google.com/go/spanner"

// Plan is an ordered list of DML statements applied in one read-write transaction.
type Plan struct {
	statements []spanner.Statement
}

func NewPlan() *Plan {
	return &Plan{
		statements: make([]spanner.Statement, 0),
	}
}

func (p *Plan) Add(stmt spanner.Statement) {
	if stmt.SQL == "" {
		return
	}
	p.statements = append(p.statements, stmt)
}

func (p *Plan) IsEmpty() bool {
	return len(p.statements) == 0
}

func (p *Plan) Statements() []spanner.Statement {
	return p.statements
}
