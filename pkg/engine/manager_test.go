package engine

import (
	"testing"

	"github.com/wqhan/jxscript/pkg/script"
	"github.com/wqhan/jxscript/pkg/vm"
)

func newIdleExecutor() (*vm.Executor, *vm.FakeContext) {
	fake := vm.NewFakeContext()
	return vm.NewExecutor(nil, fake, vm.NewVarStore()), fake
}

func TestManagerTicksForegroundAndParallel(t *testing.T) {
	fg, fgFake := newIdleExecutor()
	bg, bgFake := newIdleExecutor()

	fg.RunProgram(script.Parse("FadeOut();\nAddMoney(1);", "fg"))
	bg.RunProgram(script.Parse("FadeIn();\nAddExp(2);", "bg"))

	m := NewManager(fg)
	m.AddParallel(bg)

	m.UpdateAll(StepMs)
	if !fg.IsRunning() || !bg.IsRunning() {
		t.Fatal("both scripts should still be suspended")
	}

	fgFake.FadeOutDone = true
	bgFake.FadeInDone = true
	m.UpdateAll(StepMs)

	if fg.IsRunning() || bg.IsRunning() {
		t.Error("both scripts should have finished")
	}
	if fgFake.CallCount("AddMoney") != 1 || bgFake.CallCount("AddExp") != 1 {
		t.Error("resumed commands did not run")
	}
}

func TestManagerDropsFinishedParallels(t *testing.T) {
	fg, _ := newIdleExecutor()
	bg, bgFake := newIdleExecutor()
	bg.RunProgram(script.Parse("FadeIn();", "bg"))

	m := NewManager(fg)
	m.AddParallel(bg)
	if m.ParallelCount() != 1 {
		t.Fatal("setup: one parallel expected")
	}

	bgFake.FadeInDone = true
	m.UpdateAll(StepMs)
	m.UpdateAll(StepMs)
	if m.ParallelCount() != 0 {
		t.Errorf("ParallelCount = %d, want 0 after completion", m.ParallelCount())
	}
}

func TestManagerStopAll(t *testing.T) {
	fg, _ := newIdleExecutor()
	bg, _ := newIdleExecutor()
	fg.RunProgram(script.Parse("PlayerGoto(1,1);", "fg"))
	bg.RunProgram(script.Parse("FadeOut();", "bg"))

	m := NewManager(fg)
	m.AddParallel(bg)
	if !m.Busy() {
		t.Fatal("setup: manager should be busy")
	}

	m.StopAll()
	if m.Busy() || fg.IsRunning() || bg.IsRunning() || m.ParallelCount() != 0 {
		t.Error("StopAll should leave nothing running")
	}
}
