package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartOwnerConstructors(t *testing.T) {
	owner, err := AuthenticatedOwner("user-7")
	require.NoError(t, err)
	assert.True(t, owner.IsAuthenticated())
	assert.Equal(t, "user-7", owner.UserID())
	assert.Empty(t, owner.SessionID())
	assert.False(t, owner.IsZero())

	owner, err = AnonymousOwner("sess-9")
	require.NoError(t, err)
	assert.False(t, owner.IsAuthenticated())
	assert.Equal(t, "sess-9", owner.SessionID())
	assert.Empty(t, owner.UserID())

	_, err = AuthenticatedOwner("")
	require.Error(t, err)

	_, err = AnonymousOwner("")
	require.Error(t, err)

	assert.True(t, CartOwner{}.IsZero())
}

func TestCartOwnerInputOwner(t *testing.T) {
	t.Run("user only", func(t *testing.T) {
		owner, err := CartOwnerInput{UserID: "user-1"}.Owner()
		require.NoError(t, err)
		assert.True(t, owner.IsAuthenticated())
	})

	t.Run("session only", func(t *testing.T) {
		owner, err := CartOwnerInput{SessionID: "sess-1"}.Owner()
		require.NoError(t, err)
		assert.False(t, owner.IsAuthenticated())
	})

	t.Run("both set", func(t *testing.T) {
		_, err := CartOwnerInput{UserID: "user-1", SessionID: "sess-1"}.Owner()
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("neither set", func(t *testing.T) {
		_, err := CartOwnerInput{}.Owner()
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAddToCartRequestValidate(t *testing.T) {
	base := func() *AddToCartRequest {
		return &AddToCartRequest{
			Owner:     CartOwnerInput{SessionID: "sess-1"},
			ProductID: 10,
			Quantity:  2,
			Price:     4999,
		}
	}

	require.NoError(t, base().Validate())

	r := base()
	r.Owner = CartOwnerInput{}
	require.Error(t, r.Validate())

	r = base()
	r.ProductID = 0
	require.Error(t, r.Validate())

	r = base()
	r.Quantity = 0
	require.Error(t, r.Validate())

	r = base()
	r.Price = -1
	require.Error(t, r.Validate())
}

func TestUpdateCartItemRequestValidate(t *testing.T) {
	require.NoError(t, (&UpdateCartItemRequest{ID: 3, Quantity: 0}).Validate())
	require.Error(t, (&UpdateCartItemRequest{ID: 0, Quantity: 1}).Validate())
}
