package trade

import (
	"errors"
	"strings"

	"github.com/Knetic/govaluate"
)

// ProposalPolicy is a boolean expression evaluated before a proposal is
// admitted. Parameters: are_friends (bool), requester_id and receiver_id
// (string). An empty expression admits everything.
type ProposalPolicy struct {
	expr *govaluate.EvaluableExpression
}

// NewProposalPolicy parses a policy expression.
func NewProposalPolicy(expression string) (*ProposalPolicy, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &ProposalPolicy{}, nil
	}
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, err
	}
	return &ProposalPolicy{expr: expr}, nil
}

// Admit evaluates the policy for a proposal.
func (p *ProposalPolicy) Admit(requesterID, receiverID string, areFriends bool) (bool, error) {
	if p.expr == nil {
		return true, nil
	}
	result, err := p.expr.Evaluate(map[string]interface{}{
		"are_friends":  areFriends,
		"requester_id": requesterID,
		"receiver_id":  receiverID,
	})
	if err != nil {
		return false, err
	}
	admitted, ok := result.(bool)
	if !ok {
		return false, errors.New("policy did not evaluate to boolean")
	}
	return admitted, nil
}
