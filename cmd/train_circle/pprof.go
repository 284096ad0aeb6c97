package main

import "runtime/pprof"
import "os"
import "os/signal"
import "syscall"

// startProfile collects a CPU profile into name, usable as default.pgo.
// The profile is flushed by the returned stop function, or on SIGINT/SIGTERM.
func startProfile(name string) (stop func()) {
	f, err := os.Create(name)
	if err != nil {
		println(err.Error())
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		println(err.Error())
		f.Close()
		return func() {}
	}
	stop = func() {
		pprof.StopCPUProfile()
		f.Close()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		stop()
		os.Exit(130)
	}()
	return stop
}
