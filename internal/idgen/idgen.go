package idgen

import (
	"strconv"
	"sync"
)

type Namespace string

const (
	Users     Namespace = "user"
	Exercises Namespace = "exercise"
)

// Generator hands out decimal ids per namespace, starting at 1.
type Generator struct {
	mu   sync.Mutex
	next map[Namespace]int64
}

func New() *Generator { return &Generator{next: map[Namespace]int64{}} }

func (g *Generator) Next(ns Namespace) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next[ns]++
	return strconv.FormatInt(g.next[ns], 10)
}
