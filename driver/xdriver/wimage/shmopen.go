//go:build !windows

package wimage

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// from /usr/include/linux/ipc.h
const (
	ipcPrivate = 0
	ipcRmID    = 0
)

type shmSegment struct {
	id   uintptr
	addr uintptr
	buf  []byte
}

func shmOpen(size int) (*shmSegment, error) {
	id, _, errno := unix.Syscall(unix.SYS_SHMGET, ipcPrivate, uintptr(size), 0600)
	if errno != 0 {
		return nil, fmt.Errorf("shmget: %w", errno)
	}
	addr, _, errno := unix.Syscall(unix.SYS_SHMAT, id, 0, 0)
	if errno != 0 {
		return nil, fmt.Errorf("shmat: %w", errno)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &shmSegment{id: id, addr: addr, buf: buf}, nil
}

func (seg *shmSegment) close() error {
	_, _, errno := unix.Syscall(unix.SYS_SHMDT, seg.addr, 0, 0)
	_, _, errno2 := unix.Syscall(unix.SYS_SHMCTL, seg.id, ipcRmID, 0)
	if errno != 0 {
		return fmt.Errorf("shmdt: %w", errno)
	}
	if errno2 != 0 {
		return fmt.Errorf("shmctl: %w", errno2)
	}
	return nil
}
