package benchmark

import (
	"testing"

	"github.com/cliware/argv/internal/intern"
)

// Category: intern

func BenchmarkInternerIntern(b *testing.B) {
	interner := intern.NewInterner(0)
	names := []string{"verbose", "output", "help", "version", "config"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		interner.Intern(names[i%len(names)])
	}
}

func BenchmarkInternerPreloaded(b *testing.B) {
	interner := intern.NewInterner(0)
	names := []string{"verbose", "output", "help", "version", "config"}
	interner.Preload(names)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		interner.Intern(names[i%len(names)])
	}
}

func BenchmarkInternChar(b *testing.B) {
	chars := []byte{'a', 'h', 'v', 'c', 'p', 'd'}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intern.Char(chars[i%len(chars)])
	}
}
