package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLocks_SerializesSameUser(t *testing.T) {
	var l userLocks
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry := l.acquire(1)
			counter++
			l.release(1, entry)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestUserLocks_EntriesEvictedAfterRelease(t *testing.T) {
	var l userLocks

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			entry := l.acquire(id)
			l.release(id, entry)
		}(int64(i % 8))
	}
	wg.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.m, "idle users must not pin lock entries")
}
