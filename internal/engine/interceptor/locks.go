package interceptor

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tldr/internal/core/domain"
)

// slotLockStripes is the number of mutexes slot names are spread over.
const slotLockStripes = 64

// slotLocks serializes work on the same slot. Distinct slots may share a
// stripe, which only costs parallelism.
type slotLocks struct {
	stripes [slotLockStripes]sync.Mutex
}

// lock acquires the stripe for slot and returns its release function.
func (l *slotLocks) lock(slot domain.Slot) func() {
	m := &l.stripes[xxhash.Sum64String(slot.String())%slotLockStripes]
	m.Lock()
	return m.Unlock
}
