package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/catch_game.yaml": {Data: []byte("targetScore: 10\n")},
		"data/greeting.yaml":   {Data: []byte("title: hi\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false after Init(nil)")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/catch_game.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	t.Cleanup(func() { Init(nil) })

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"plain path", "data/catch_game.yaml", "targetScore: 10\n", false},
		{"dot prefix", "./data/greeting.yaml", "title: hi\n", false},
		{"unknown prefix", "assets/heart.png", "", true},
		{"missing file", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	t.Cleanup(func() { Init(nil) })

	if !Exists("data/catch_game.yaml") {
		t.Error("Exists should report shipped file")
	}
	if Exists("data/nope.yaml") {
		t.Error("Exists should be false for missing file")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob matched %d files, want 2: %v", len(matches), matches)
	}
	t.Logf("✓ Glob matched %v", matches)
}
