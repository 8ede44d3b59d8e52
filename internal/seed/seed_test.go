package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository/memory"
	"github.com/wizardXds/medicare/pkg/security"
)

func TestRunSeedsStarterData(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	require.NoError(t, Run(ctx, store, hasher))

	admin, err := store.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NoError(t, hasher.Compare(admin.Password, DefaultPassword))

	doctors, err := store.Users().ListByRole(ctx, model.RoleDoctor)
	require.NoError(t, err)
	assert.Len(t, doctors, 3)

	hospitals, err := store.Hospitals().List(ctx)
	require.NoError(t, err)
	require.Len(t, hospitals, 2)
	assert.Equal(t, "City General Hospital", hospitals[0].Name)
	assert.Equal(t, "Memorial Medical Center", hospitals[1].Name)
}

func TestRunIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	require.NoError(t, Run(ctx, store, hasher))
	require.NoError(t, Run(ctx, store, hasher))

	doctors, err := store.Users().ListByRole(ctx, model.RoleDoctor)
	require.NoError(t, err)
	assert.Len(t, doctors, 3)

	hospitals, err := store.Hospitals().List(ctx)
	require.NoError(t, err)
	assert.Len(t, hospitals, 2)
}
