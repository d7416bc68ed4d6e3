package core

import (
	"runtime"
	"strconv"
	"sync"
)

// NormPriority is the priority reported for goroutines that registered none.
const NormPriority = 5

// ThreadInfo describes the goroutine that issued a log call.
type ThreadInfo struct {
	Name     string
	Priority int
	Group    string
}

// threadNames maps goroutine IDs to registered ThreadInfo.
var threadNames sync.Map // map[uint64]ThreadInfo

// GoroutineID returns the ID of the calling goroutine, parsed from the
// header runtime.Stack emits ("goroutine 42 [running]:"). It returns 0 if
// the header cannot be parsed.
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if len(b) <= len(prefix) || string(b[:len(prefix)]) != prefix {
		return 0
	}
	b = b[len(prefix):]
	end := 0
	for end < len(b) && b[end] >= '0' && b[end] <= '9' {
		end++
	}
	id, err := strconv.ParseUint(string(b[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// SetThreadInfo names the calling goroutine for thread decoration.
// Call ClearThreadInfo before the goroutine exits; IDs are not reused
// while the entry is present, but the map is never pruned otherwise.
func SetThreadInfo(info ThreadInfo) {
	threadNames.Store(GoroutineID(), info)
}

// ClearThreadInfo removes the registration of the calling goroutine.
func ClearThreadInfo() {
	threadNames.Delete(GoroutineID())
}

// CurrentThreadInfo returns the registered info of the calling goroutine,
// or a synthesized "goroutine-<id>" entry with NormPriority and no group.
func CurrentThreadInfo() ThreadInfo {
	id := GoroutineID()
	if v, ok := threadNames.Load(id); ok {
		return v.(ThreadInfo)
	}
	return ThreadInfo{Name: "goroutine-" + strconv.FormatUint(id, 10), Priority: NormPriority}
}
