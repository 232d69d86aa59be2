//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/google/uuid"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		t.Fatalf("Failed to ensure schema: %v", err)
	}
	return db
}

func TestIntegration_Result_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	id, err := db.SaveResult(ctx, SaveInput{
		UserName:     "Integration Test",
		RawResponses: []types.Answer{{QuestionID: 1, Most: "Determinado(a)", Least: "Paciente"}},
		Result:       sampleResult(),
	})
	if err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	defer func() { _, _ = db.DeleteResult(ctx, id) }()

	t.Run("get result", func(t *testing.T) {
		rec, err := db.GetResult(ctx, id)
		if err != nil {
			t.Fatalf("GetResult failed: %v", err)
		}
		if rec == nil {
			t.Fatal("Result not found")
		}
		if rec.PrimaryProfile != "D" || rec.DScore != 12 {
			t.Errorf("got profile %q score %d, want D 12", rec.PrimaryProfile, rec.DScore)
		}
		if rec.UserEmail != nil {
			t.Errorf("UserEmail = %v, want nil", *rec.UserEmail)
		}
		result, err := rec.Result()
		if err != nil {
			t.Fatalf("Result() failed: %v", err)
		}
		if result.DiscLevels["D"] != types.TierHigh {
			t.Errorf("D level = %q, want high", result.DiscLevels["D"])
		}
	})

	t.Run("list results", func(t *testing.T) {
		list, err := db.ListResults(ctx, 5)
		if err != nil {
			t.Fatalf("ListResults failed: %v", err)
		}
		found := false
		for _, s := range list {
			if s.ID == id {
				found = true
			}
		}
		if !found {
			t.Error("saved result missing from list")
		}
	})

	t.Run("missing result", func(t *testing.T) {
		rec, err := db.GetResult(ctx, uuid.New())
		if err != nil {
			t.Fatalf("GetResult failed: %v", err)
		}
		if rec != nil {
			t.Error("expected nil record for unknown id")
		}
	})

	t.Run("delete result", func(t *testing.T) {
		deleted, err := db.DeleteResult(ctx, id)
		if err != nil {
			t.Fatalf("DeleteResult failed: %v", err)
		}
		if !deleted {
			t.Error("expected a row to be deleted")
		}
	})
}
