package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	user, err := s.users.CreateUser(ctx, &CreateUserInput{UserID: " U1 ", Name: "Asha", Site: "North yard"})
	require.NoError(t, err)
	assert.Equal(t, "U1", user.UserID)

	_, err = s.users.CreateUser(ctx, &CreateUserInput{UserID: "U1", Name: "Other"})
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))

	_, err = s.users.CreateUser(ctx, &CreateUserInput{UserID: "U2"})
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))

	_, err = s.users.CreateUser(ctx, &CreateUserInput{UserID: "U2", Name: "Bhavin"})
	require.NoError(t, err)

	updated, err := s.users.UpdateUser(ctx, &UpdateUserInput{UserID: "U1", Phone: ptr("98250")})
	require.NoError(t, err)
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "98250", updated.Phone)

	_, err = s.users.UpdateUser(ctx, &UpdateUserInput{UserID: "U1", Name: ptr("  ")})
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))

	found, err := s.users.SearchUsers(ctx, "bhav")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "U2", found[0].UserID)

	none, err := s.users.SearchUsers(ctx, " ")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := s.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = s.users.GetUser(ctx, "U9")
	assert.True(t, apperror.HasCode(err, http.StatusNotFound))
}

func TestUserService_DeleteUser_RemovesReceipts(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.users.CreateUser(ctx, &CreateUserInput{UserID: "U1", Name: "Asha"})
	require.NoError(t, err)

	for _, number := range []string{"RR-1", "RR-2"} {
		_, err := s.receipts.CreateReturnReceipt(ctx, receiptInput(number, 3))
		require.NoError(t, err)
	}
	other := receiptInput("RR-3", 3)
	other.UserID = "U2"
	_, err = s.receipts.CreateReturnReceipt(ctx, other)
	require.NoError(t, err)

	removed, err := s.users.DeleteUser(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = s.users.GetUser(ctx, "U1")
	assert.True(t, apperror.HasCode(err, http.StatusNotFound))

	left, err := s.receipts.QueryReturnReceipts(ctx, &QueryReturnReceiptsInput{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "RR-3", left[0].ReceiptNumber)

	_, err = s.users.DeleteUser(ctx, "U1")
	assert.True(t, apperror.HasCode(err, http.StatusNotFound))
}
