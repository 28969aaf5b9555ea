package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyEmptyAdmitsAll(t *testing.T) {
	policy, err := NewProposalPolicy("")
	require.NoError(t, err)

	admitted, err := policy.Admit("a", "b", false)
	require.NoError(t, err)
	assert.True(t, admitted)
}

func TestPolicyFriendsOnly(t *testing.T) {
	policy, err := NewProposalPolicy("are_friends == true")
	require.NoError(t, err)

	admitted, err := policy.Admit("a", "b", true)
	require.NoError(t, err)
	assert.True(t, admitted)

	admitted, err = policy.Admit("a", "b", false)
	require.NoError(t, err)
	assert.False(t, admitted)
}

func TestPolicyAccountPin(t *testing.T) {
	policy, err := NewProposalPolicy(`are_friends == true || requester_id == "gym-leader"`)
	require.NoError(t, err)

	admitted, err := policy.Admit("gym-leader", "b", false)
	require.NoError(t, err)
	assert.True(t, admitted)
}

func TestPolicyParseError(t *testing.T) {
	_, err := NewProposalPolicy("are_friends ==")
	assert.Error(t, err)
}

func TestPolicyNonBooleanResult(t *testing.T) {
	policy, err := NewProposalPolicy("requester_id")
	require.NoError(t, err)

	_, err = policy.Admit("a", "b", true)
	assert.Error(t, err)
}
