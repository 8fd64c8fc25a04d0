package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyoffice/fyoffice/internal/client/models"
)

func TestStore_UserLifecycle(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())

	s.SetUser(models.UserDto{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@mail.com"})
	require.True(t, s.Authenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, "Ada", s.User().FirstName)

	s.ClearUser()
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
}

func TestStore_User_ReturnsCopy(t *testing.T) {
	s := NewStore()
	s.SetUser(models.UserDto{ID: 1, FirstName: "Ada"})

	u := s.User()
	u.FirstName = "changed"

	assert.Equal(t, "Ada", s.User().FirstName)
}

func TestStore_ShowConfirmation_ReplacesPrevious(t *testing.T) {
	s := NewStore()

	s.ShowConfirmation("Delete #1", "Are you sure?", []Action{{Label: "Cancel", Style: StyleSecondary}})
	s.ShowConfirmation("Delete #2", "Are you really sure?", []Action{
		{Label: "Cancel", Style: StyleSecondary},
		{Label: "Delete", Style: StyleDanger},
	})

	c := s.Confirmation()
	require.True(t, c.Visible)
	assert.Equal(t, "Delete #2", c.Title)
	assert.Len(t, c.Actions, 2)
}

func TestStore_HideConfirmation(t *testing.T) {
	s := NewStore()

	s.ShowConfirmation("Logging Out", "Are you sure you want to logout?", nil)
	s.HideConfirmation()

	c := s.Confirmation()
	assert.False(t, c.Visible)
	// descriptor content survives until replaced, only visibility flips
	assert.Equal(t, "Logging Out", c.Title)
}

func TestStore_Notifications_DrainEmptiesQueue(t *testing.T) {
	s := NewStore()

	s.Notify(LevelSuccess, "Computer added.")
	s.Notify(LevelError, "Something went wrong.")

	got := s.DrainNotifications()
	require.Len(t, got, 2)
	assert.Equal(t, LevelSuccess, got[0].Level)
	assert.Equal(t, "Computer added.", got[0].Message)
	assert.Equal(t, LevelError, got[1].Level)

	assert.Empty(t, s.DrainNotifications())
}

func TestStore_ActionsCarryCallerClosures(t *testing.T) {
	s := NewStore()

	invoked := false
	s.ShowConfirmation("Delete #3", "Sure?", []Action{
		{Label: "Delete", Style: StyleDanger, Invoke: func() { invoked = true }},
	})

	c := s.Confirmation()
	require.Len(t, c.Actions, 1)
	c.Actions[0].Invoke()
	assert.True(t, invoked)
}
