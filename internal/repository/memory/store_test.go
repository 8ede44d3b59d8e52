package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
)

func strPtr(s string) *string { return &s }

func newTestUser(username string, role model.Role) *model.User {
	return &model.User{
		Username:  username,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
		Role:      role,
	}
}

func TestUserCreateAssignsMonotonicIDs(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	lastID := 0
	for i, username := range []string{"alice", "bob", "carol"} {
		u := newTestUser(username, model.RolePatient)
		require.NoError(t, store.Users().Create(ctx, u))
		assert.Equal(t, i+1, u.ID)
		assert.Greater(t, u.ID, lastID)
		assert.False(t, u.CreatedAt.IsZero())
		lastID = u.ID
	}
}

func TestUserGetReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	u := newTestUser("alice", model.RolePatient)
	require.NoError(t, store.Users().Create(ctx, u))

	got, err := store.Users().Get(ctx, u.ID)
	require.NoError(t, err)
	got.FirstName = "Mutated"

	again, err := store.Users().Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test", again.FirstName)
}

func TestUserGetMissing(t *testing.T) {
	store := NewStore()

	_, err := store.Users().Get(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserListByRoleExactness(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	doctors := map[string]bool{"drsmith": true, "drjones": true}
	for _, username := range []string{"alice", "drsmith", "bob", "drjones", "admin1"} {
		role := model.RolePatient
		switch {
		case doctors[username]:
			role = model.RoleDoctor
		case username == "admin1":
			role = model.RoleAdmin
		}
		require.NoError(t, store.Users().Create(ctx, newTestUser(username, role)))
	}

	got, err := store.Users().ListByRole(ctx, model.RoleDoctor)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, u := range got {
		assert.True(t, doctors[u.Username], "unexpected user %s in doctor listing", u.Username)
		assert.Equal(t, model.RoleDoctor, u.Role)
	}
}

func TestUserUpdateMergesAndPreservesIdentity(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	u := newTestUser("alice", model.RolePatient)
	require.NoError(t, store.Users().Create(ctx, u))

	updated, err := store.Users().Update(ctx, u.ID, &model.UpdateUserRequest{
		Phone: strPtr("555-000-1111"),
	})
	require.NoError(t, err)

	assert.Equal(t, u.ID, updated.ID)
	assert.Equal(t, u.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "Test", updated.FirstName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-000-1111", *updated.Phone)
}

func TestUserUpdateMissing(t *testing.T) {
	store := NewStore()

	_, err := store.Users().Update(context.Background(), 99, &model.UpdateUserRequest{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserGetByUsernameAndEmail(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	u := newTestUser("alice", model.RolePatient)
	require.NoError(t, store.Users().Create(ctx, u))

	byName, err := store.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := store.Users().GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = store.Users().GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAppointmentUpdateLeavesOtherFieldsUntouched(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	appt := &model.Appointment{
		PatientID: 1,
		DoctorID:  2,
		Date:      "2024-06-20",
		Time:      "09:00",
		Duration:  30,
		Status:    model.AppointmentStatusPending,
		Type:      model.AppointmentTypeInPerson,
	}
	require.NoError(t, store.Appointments().Create(ctx, appt))

	updated, err := store.Appointments().Update(ctx, appt.ID, &model.UpdateAppointmentRequest{
		Status: strPtr("confirmed"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusConfirmed, updated.Status)
	assert.Equal(t, "2024-06-20", updated.Date)
	assert.Equal(t, "09:00", updated.Time)
	assert.Equal(t, 30, updated.Duration)
	assert.Equal(t, appt.ID, updated.ID)
	assert.Equal(t, appt.CreatedAt, updated.CreatedAt)
}

func TestAppointmentListByPatientAndDoctor(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, a := range []model.Appointment{
		{PatientID: 1, DoctorID: 2, Date: "2024-06-20", Time: "09:00"},
		{PatientID: 1, DoctorID: 3, Date: "2024-06-21", Time: "10:00"},
		{PatientID: 4, DoctorID: 2, Date: "2024-06-22", Time: "11:00"},
	} {
		appt := a
		require.NoError(t, store.Appointments().Create(ctx, &appt))
	}

	byPatient, err := store.Appointments().ListByPatient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byPatient, 2)
	assert.Equal(t, "2024-06-20", byPatient[0].Date)
	assert.Equal(t, "2024-06-21", byPatient[1].Date)

	byDoctor, err := store.Appointments().ListByDoctor(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byDoctor, 2)

	empty, err := store.Appointments().ListByPatient(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMessageListByUserCoversBothDirections(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, m := range []model.Message{
		{SenderID: 1, ReceiverID: 2, Content: "hello"},
		{SenderID: 2, ReceiverID: 1, Content: "hi back"},
		{SenderID: 3, ReceiverID: 4, Content: "unrelated"},
	} {
		msg := m
		require.NoError(t, store.Messages().Create(ctx, &msg))
	}

	got, err := store.Messages().ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Content)
	assert.Equal(t, "hi back", got[1].Content)
}

func TestMessageMarkAsReadIsIdempotent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	msg := &model.Message{SenderID: 1, ReceiverID: 2, Content: "hello"}
	require.NoError(t, store.Messages().Create(ctx, msg))
	assert.False(t, msg.IsRead)

	first, err := store.Messages().MarkAsRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, first.IsRead)

	second, err := store.Messages().MarkAsRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, second.IsRead)
	assert.Equal(t, first.ID, second.ID)

	_, err = store.Messages().MarkAsRead(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPaymentUpdatePatchesStatusOnly(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	p := &model.Payment{
		PatientID:     1,
		AppointmentID: 2,
		Amount:        15000,
		Status:        model.PaymentStatusPending,
		PaymentMethod: strPtr("credit_card"),
	}
	require.NoError(t, store.Payments().Create(ctx, p))

	updated, err := store.Payments().Update(ctx, p.ID, &model.UpdatePaymentRequest{
		Status:        strPtr("completed"),
		TransactionID: strPtr("txn_123"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusCompleted, updated.Status)
	assert.Equal(t, 15000, updated.Amount)
	require.NotNil(t, updated.PaymentMethod)
	assert.Equal(t, "credit_card", *updated.PaymentMethod)
	require.NotNil(t, updated.TransactionID)
	assert.Equal(t, "txn_123", *updated.TransactionID)
}

func TestIDSequencesAreIndependentPerEntity(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	u := newTestUser("alice", model.RolePatient)
	require.NoError(t, store.Users().Create(ctx, u))
	require.NoError(t, store.Users().Create(ctx, newTestUser("bob", model.RolePatient)))

	h := &model.Hospital{Name: "City General Hospital", Address: "123 Medical Blvd", City: "Medical City", State: "MC", ZipCode: "12345"}
	require.NoError(t, store.Hospitals().Create(ctx, h))

	assert.Equal(t, 1, h.ID)
}
