package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")

	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"users", "tasks", "activity"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %q missing: %v", table, err)
		}
	}

	var fk int
	if err := conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk); err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fk)
	}
}

func TestInitDB_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")

	first, err := InitDB(path)
	if err != nil {
		t.Fatalf("first InitDB: %v", err)
	}
	if _, err := first.Exec(`INSERT INTO users (username, email, password_hash, created_at) VALUES ('a', 'a@x.com', 'h', 'now')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	_ = first.Close()

	second, err := InitDB(path)
	if err != nil {
		t.Fatalf("second InitDB: %v", err)
	}
	defer second.Close()

	var n int
	if err := second.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected existing row to survive re-init, got %d rows", n)
	}
}

func TestInitDB_TaskRequiresOwner(t *testing.T) {
	conn, err := InitDB(filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO tasks (content, done, user_id, created_at) VALUES ('orphan', 0, 999, 'now')`)
	if err == nil {
		t.Fatalf("expected foreign key violation for unknown user_id")
	}
}
