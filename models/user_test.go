package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUserJSONFieldNames(t *testing.T) {
	t.Parallel()

	u := User{
		ID:                 "1",
		Name:               "Admin",
		Email:              "admin@manuscrito.com",
		IsAdmin:            true,
		ProgressPercentage: 100,
		LastUnlockedDay:    12,
		CreatedAt:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	for _, key := range []string{"id", "name", "email", "isAdmin", "progressPercentage", "lastUnlockedDay", "createdAt"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("expected field %q in %s", key, raw)
		}
	}
	if len(fields) != 7 {
		t.Fatalf("expected exactly 7 fields, got %d: %s", len(fields), raw)
	}
}

func TestFirstName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		user User
		want string
	}{
		{"full name", User{Name: "María García"}, "María"},
		{"single word", User{Name: "Admin"}, "Admin"},
		{"email fallback", User{Email: "ana@email.com"}, "ana"},
		{"empty", User{}, ""},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.user.FirstName(); got != tt.want {
				t.Fatalf("FirstName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccountUser(t *testing.T) {
	t.Parallel()

	joined := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	account := Account{
		ExternalID:         "roster-1",
		Name:               "Carlos López",
		Email:              "carlos@email.com",
		ProgressPercentage: 33,
		LastUnlockedDay:    4,
		JoinedAt:           joined,
	}

	u := account.User()
	if u.ID != "roster-1" || u.Email != "carlos@email.com" || u.IsAdmin {
		t.Fatalf("unexpected identity fields: %+v", u)
	}
	if u.ProgressPercentage != 33 || u.LastUnlockedDay != 4 {
		t.Fatalf("unexpected progress fields: %+v", u)
	}
	if !u.CreatedAt.Equal(joined) {
		t.Fatalf("CreatedAt = %s, want %s", u.CreatedAt, joined)
	}
}
