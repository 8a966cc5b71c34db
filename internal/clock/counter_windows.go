//go:build windows
// +build windows

package clock

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// The standard time package only offers ~1ms granularity on Windows, so the
// counter is read straight from QueryPerformanceCounter instead.
var (
	kernel32DLL                   = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceCounter   = kernel32DLL.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = kernel32DLL.NewProc("QueryPerformanceFrequency")
)

func queryFrequency() (int64, bool) {
	var freq int64
	ret, _, _ := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&freq)))
	if ret == 0 || freq == 0 {
		return 0, false
	}
	return freq, true
}

func queryCounter() int64 {
	var count int64
	procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&count)))
	return count
}
