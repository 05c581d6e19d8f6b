package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FILE", "duel.log")
	t.Setenv("DATABASE", "duels.db")
	t.Setenv("DUEL_PLAYER1", "Player 1")
	t.Setenv("DUEL_PLAYER2", "")
	t.Setenv("SPECTATE_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player1Name != "Player 1" || cfg.Database != "duels.db" || cfg.SpectateAddr != "" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := cfg.SecondName(true); got != "Computer" {
		t.Fatalf("expected Computer, got %q", got)
	}
	if got := cfg.SecondName(false); got != "Player 2" {
		t.Fatalf("expected Player 2, got %q", got)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FILE", "stderr")
	t.Setenv("DATABASE", "")
	t.Setenv("DUEL_PLAYER1", "Ana")
	t.Setenv("DUEL_PLAYER2", "Ben")
	t.Setenv("SPECTATE_ADDR", ":8080")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFile != "stderr" || cfg.Database != "" || cfg.SpectateAddr != ":8080" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := cfg.SecondName(true); got != "Ben" {
		t.Fatalf("expected configured name to win, got %q", got)
	}
}

func TestLoad_RejectsBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid LOG_LEVEL")
	}
}
