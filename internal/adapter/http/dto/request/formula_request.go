package request

import "strings"

type PutFormulaRequest struct {
	Expression string `json:"expression" binding:"required"`
}

func (r PutFormulaRequest) ResolveExpression() string {
	return strings.TrimSpace(r.Expression)
}
