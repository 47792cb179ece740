package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"manuscrito/internal/config"
	"manuscrito/internal/course"
	"manuscrito/internal/db"
	"manuscrito/internal/progress"
	"manuscrito/models"
)

const joinedLayout = "2006-01-02"

func main() {
	csvPath := "roster.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	if err := run(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(csvPath string) error {
	if strings.TrimSpace(csvPath) == "" {
		return fmt.Errorf("csv path must not be empty")
	}

	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("locate csv: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	records, err := readCSV(csvPath)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	created, updated, err := importRecords(context.Background(), db.NewDirectory(database), records, time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Imported %d learners (%d new, %d updated) from %s\n", created+updated, created, updated, filepath.Base(csvPath))
	return nil
}

type rosterWriter interface {
	UpsertRosterAccount(ctx context.Context, account models.Account) (models.Account, bool, error)
}

func importRecords(ctx context.Context, dir rosterWriter, records []map[string]string, now time.Time) (created, updated int, err error) {
	for idx, record := range records {
		account, err := buildAccount(record, now)
		if err != nil {
			return created, updated, fmt.Errorf("record %d: %w", idx+1, err)
		}
		_, isNew, err := dir.UpsertRosterAccount(ctx, account)
		if err != nil {
			return created, updated, fmt.Errorf("record %d (%s): %w", idx+1, account.Email, err)
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseCSV(file)
}

func parseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	header := make([]string, len(rows[0]))
	for idx, key := range rows[0] {
		header[idx] = strings.ToLower(strings.TrimSpace(key))
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}

		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[key] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}

	return records, nil
}

// buildAccount maps a CSV row onto a roster account. A missing progress column is
// derived from the watermark day.
func buildAccount(row map[string]string, now time.Time) (models.Account, error) {
	name := strings.TrimSpace(row["name"])
	if name == "" {
		return models.Account{}, errors.New("name is required")
	}

	address, err := mail.ParseAddress(strings.TrimSpace(row["email"]))
	if err != nil {
		return models.Account{}, fmt.Errorf("invalid email %q", row["email"])
	}

	day := progress.FirstDay
	if raw := row["day"]; raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < progress.FirstDay || parsed > course.TotalDays+1 {
			return models.Account{}, fmt.Errorf("day %q out of range", raw)
		}
		day = parsed
	}

	percentage := progress.Percentage(day - 1)
	if raw := strings.TrimSuffix(row["progress"], "%"); raw != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || parsed < 0 || parsed > 100 {
			return models.Account{}, fmt.Errorf("progress %q out of range", row["progress"])
		}
		percentage = parsed
	}

	joined := now
	if raw := row["joined"]; raw != "" {
		parsed, err := time.Parse(joinedLayout, raw)
		if err != nil {
			return models.Account{}, fmt.Errorf("joined %q: expected YYYY-MM-DD", raw)
		}
		joined = parsed
	}

	return models.Account{
		Name:               name,
		Email:              strings.ToLower(address.Address),
		ProgressPercentage: percentage,
		LastUnlockedDay:    day,
		JoinedAt:           joined,
	}, nil
}
