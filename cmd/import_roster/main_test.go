package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"manuscrito/internal/db"
	"manuscrito/internal/db/mock"
)

var importTime = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestParseCSVNormalizesHeaders(t *testing.T) {
	input := " Name ,EMAIL, progress,day,joined\nLucía Pérez, lucia@email.com,42,6,2025-12-20\n\n"
	records, err := parseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseCSV returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["name"] != "Lucía Pérez" || records[0]["email"] != "lucia@email.com" {
		t.Fatalf("unexpected record: %v", records[0])
	}
}

func TestParseCSVRejectsEmptyInput(t *testing.T) {
	if _, err := parseCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty csv")
	}
}

func TestBuildAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		row      map[string]string
		wantErr  bool
		wantDay  int
		wantPct  int
		wantJoin time.Time
	}{
		{
			name:     "full row",
			row:      map[string]string{"name": "Lucía", "email": "Lucia@Email.com", "progress": "42%", "day": "6", "joined": "2025-12-20"},
			wantDay:  6,
			wantPct:  42,
			wantJoin: time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "derived progress",
			row:      map[string]string{"name": "Pedro", "email": "pedro@email.com", "day": "7"},
			wantDay:  7,
			wantPct:  50,
			wantJoin: importTime,
		},
		{
			name:     "defaults to first day",
			row:      map[string]string{"name": "Rosa", "email": "rosa@email.com"},
			wantDay:  1,
			wantPct:  0,
			wantJoin: importTime,
		},
		{name: "missing name", row: map[string]string{"email": "x@email.com"}, wantErr: true},
		{name: "bad email", row: map[string]string{"name": "X", "email": "no-es-correo"}, wantErr: true},
		{name: "day too large", row: map[string]string{"name": "X", "email": "x@email.com", "day": "14"}, wantErr: true},
		{name: "progress too large", row: map[string]string{"name": "X", "email": "x@email.com", "progress": "120"}, wantErr: true},
		{name: "bad date", row: map[string]string{"name": "X", "email": "x@email.com", "joined": "20/12/2025"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account, err := buildAccount(tt.row, importTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got account %+v", account)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildAccount returned error: %v", err)
			}
			if account.LastUnlockedDay != tt.wantDay || account.ProgressPercentage != tt.wantPct {
				t.Fatalf("expected day %d at %d%%, got day %d at %d%%", tt.wantDay, tt.wantPct, account.LastUnlockedDay, account.ProgressPercentage)
			}
			if !account.JoinedAt.Equal(tt.wantJoin) {
				t.Fatalf("expected joined %v, got %v", tt.wantJoin, account.JoinedAt)
			}
			if account.Email != strings.ToLower(tt.row["email"]) {
				t.Fatalf("expected lower-cased email, got %q", account.Email)
			}
		})
	}
}

func TestImportRecordsCreatesAndUpdates(t *testing.T) {
	ctx := context.Background()
	database, err := mock.New(ctx)
	if err != nil {
		t.Fatalf("mock.New returned error: %v", err)
	}
	dir := db.NewDirectory(database)

	records := []map[string]string{
		{"name": "Lucía Pérez", "email": "lucia@email.com", "day": "3"},
		{"name": "María García", "email": "maria@email.com", "progress": "92", "day": "12", "joined": "2025-12-01"},
	}

	created, updated, err := importRecords(ctx, dir, records, importTime)
	if err != nil {
		t.Fatalf("importRecords returned error: %v", err)
	}
	if created != 1 || updated != 1 {
		t.Fatalf("expected 1 created and 1 updated, got %d and %d", created, updated)
	}

	roster, err := dir.Roster(ctx)
	if err != nil {
		t.Fatalf("Roster returned error: %v", err)
	}
	var found bool
	for _, account := range roster {
		if account.Email == "maria@email.com" {
			found = true
			if account.ProgressPercentage != 92 || account.LastUnlockedDay != 12 {
				t.Fatalf("expected maria to be updated, got %+v", account)
			}
		}
	}
	if !found {
		t.Fatal("expected maria in roster")
	}
}

func TestImportRecordsStopsOnLoginAccount(t *testing.T) {
	ctx := context.Background()
	database, err := mock.New(ctx)
	if err != nil {
		t.Fatalf("mock.New returned error: %v", err)
	}

	records := []map[string]string{{"name": "Intruso", "email": db.AdminEmail}}
	_, _, err = importRecords(ctx, db.NewDirectory(database), records, importTime)
	if !errors.Is(err, db.ErrLoginAccount) {
		t.Fatalf("expected ErrLoginAccount, got %v", err)
	}
}

func TestRunRejectsMissingFile(t *testing.T) {
	if err := run(""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if err := run("does-not-exist.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
