package event

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/exiled-team/exiled/pkg/types"
	"github.com/rs/zerolog"
)

func newTestBus(faults *[]*SubscriberFault) *Bus {
	return NewBus(
		WithLogger(zerolog.Nop()),
		WithReporter(ReporterFunc(func(f *SubscriberFault) {
			if faults != nil {
				*faults = append(*faults, f)
			}
		})),
	)
}

func TestBus_Subscribe(t *testing.T) {
	bus := newTestBus(nil)

	var received *DoorInteractEventArgs
	sub := DoorInteract.Subscribe(bus, func(ev *DoorInteractEventArgs) {
		received = ev
	})
	defer sub.Unsubscribe()

	ev := NewDoorInteractEventArgs(&types.Player{ID: 1}, &types.Door{Name: "LCZ_A"}, true)
	DoorInteract.Dispatch(bus, ev)

	if received != ev {
		t.Fatalf("expected handler to receive the dispatched payload")
	}
	if sub.Kind() != KindDoorInteract {
		t.Errorf("expected subscription kind %v, got %v", KindDoorInteract, sub.Kind())
	}
}

func TestBus_NoSubscribers(t *testing.T) {
	bus := newTestBus(nil)

	ev := NewDoorInteractEventArgs(nil, nil, true)
	DoorInteract.Dispatch(bus, ev)

	if !ev.IsAllowed {
		t.Errorf("expected payload to be untouched")
	}
	if got := bus.Stats().Dispatches; got != 0 {
		t.Errorf("expected no counted dispatch, got %d", got)
	}
}

func TestBus_NoSubscribersDoesNotAllocate(t *testing.T) {
	bus := newTestBus(nil)
	// A handler on another kind must not affect the fast path.
	GeneratorOpen.Subscribe(bus, func(*GeneratorOpenEventArgs) {})

	ev := NewDoorInteractEventArgs(nil, nil, true)
	allocs := testing.AllocsPerRun(100, func() {
		DoorInteract.Dispatch(bus, ev)
	})
	if allocs != 0 {
		t.Errorf("expected zero allocations, got %v", allocs)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := newTestBus(nil)

	var count int32
	sub := DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {
		atomic.AddInt32(&count, 1)
	})

	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	if atomic.LoadInt32(&count) != 1 {
		t.Errorf("Expected 1 event before unsub, got %d", count)
	}

	sub.Unsubscribe()
	// Second removal is a no-op.
	sub.Unsubscribe()

	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	if atomic.LoadInt32(&count) != 1 {
		t.Errorf("Expected still 1 event after unsub, got %d", count)
	}
	if bus.Count(KindDoorInteract) != 0 {
		t.Errorf("expected empty subscriber list, got %d", bus.Count(KindDoorInteract))
	}
}

func TestBus_ZeroSubscriptionIsInert(t *testing.T) {
	var sub Subscription
	sub.Unsubscribe()

	bus := newTestBus(nil)
	bus.Unsubscribe(sub)
}

func TestBus_RegistrationOrder(t *testing.T) {
	bus := newTestBus(nil)

	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {
			order = append(order, name)
		})
	}

	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))

	want := []string{"a", "b", "c", "a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestBus_LastWriterWins(t *testing.T) {
	bus := newTestBus(nil)

	var seenByB bool
	DoorInteract.Subscribe(bus, func(ev *DoorInteractEventArgs) {
		ev.IsAllowed = false
	})
	DoorInteract.Subscribe(bus, func(ev *DoorInteractEventArgs) {
		seenByB = ev.IsAllowed
		ev.IsAllowed = true
	})

	ev := NewDoorInteractEventArgs(nil, nil, true)
	DoorInteract.Dispatch(bus, ev)

	if seenByB {
		t.Errorf("expected second handler to observe the first handler's veto")
	}
	if !ev.IsAllowed {
		t.Errorf("expected last writer to win with allow=true")
	}
}

func TestBus_DuplicateRegistration(t *testing.T) {
	bus := newTestBus(nil)

	var count int
	handler := func(*DoorInteractEventArgs) { count++ }
	first := DoorInteract.Subscribe(bus, handler)
	DoorInteract.Subscribe(bus, handler)

	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	if count != 2 {
		t.Fatalf("expected duplicate registration to run twice, got %d", count)
	}

	first.Unsubscribe()
	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	if count != 3 {
		t.Errorf("expected the remaining registration to still run, got %d", count)
	}
}

func TestBus_FaultIsolation(t *testing.T) {
	var faults []*SubscriberFault
	bus := newTestBus(&faults)

	var afterRan bool
	DoorInteract.Subscribe(bus, func(ev *DoorInteractEventArgs) {
		ev.IsAllowed = false
	})
	DoorInteract.Subscribe(bus, func(ev *DoorInteractEventArgs) {
		panic("plugin bug")
	}, WithOwner("broken"))
	DoorInteract.Subscribe(bus, func(ev *DoorInteractEventArgs) {
		afterRan = true
	})

	ev := NewDoorInteractEventArgs(nil, nil, true)
	DoorInteract.Dispatch(bus, ev)

	if !afterRan {
		t.Errorf("expected handler after the faulting one to run")
	}
	if ev.IsAllowed {
		t.Errorf("expected write made before the fault to survive")
	}
	if len(faults) != 1 {
		t.Fatalf("expected 1 fault, got %d", len(faults))
	}
	f := faults[0]
	if f.Kind != KindDoorInteract || f.Owner != "broken" || f.Value != "plugin bug" {
		t.Errorf("unexpected fault: %+v", f)
	}
	if f.Stack == "" || f.ID == "" {
		t.Errorf("expected fault to carry an id and a stack")
	}
	if got := bus.Stats(); got.Faults != 1 || got.Invocations != 3 || got.Dispatches != 1 {
		t.Errorf("unexpected stats: %+v", got)
	}
}

func TestBus_PartialWriteBeforeFault(t *testing.T) {
	bus := newTestBus(nil)

	DoorInteract.Subscribe(bus, func(ev *DoorInteractEventArgs) {
		ev.IsAllowed = false
		panic(errors.New("door state unavailable"))
	})

	ev := NewDoorInteractEventArgs(nil, nil, true)
	DoorInteract.Dispatch(bus, ev)

	if ev.IsAllowed {
		t.Errorf("expected the partial write to remain")
	}
}

func TestBus_SelfUnsubscribeDuringDispatch(t *testing.T) {
	bus := newTestBus(nil)

	var calls []string
	DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {
		calls = append(calls, "a")
	})
	var self Subscription
	self = DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {
		calls = append(calls, "b")
		self.Unsubscribe()
	})
	DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {
		calls = append(calls, "c")
	})

	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))

	want := []string{"a", "b", "c", "a", "c"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, calls)
		}
	}
}

func TestBus_SubscribeDuringDispatch(t *testing.T) {
	bus := newTestBus(nil)

	var late int
	DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {
		DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) { late++ })
	})

	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	if late != 0 {
		t.Errorf("expected handler added mid-dispatch to wait for the next dispatch")
	}

	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	if late != 1 {
		t.Errorf("expected handler added in the first dispatch to run once, got %d", late)
	}
}

func TestBus_IndependentBuses(t *testing.T) {
	a, b := newTestBus(nil), newTestBus(nil)

	var count int
	DoorInteract.Subscribe(a, func(*DoorInteractEventArgs) { count++ })
	DoorInteract.Dispatch(b, NewDoorInteractEventArgs(nil, nil, true))

	if count != 0 {
		t.Errorf("expected buses not to share subscribers")
	}
}

func TestBus_Observe(t *testing.T) {
	bus := newTestBus(nil)

	DoorInteract.Subscribe(bus, func(ev *DoorInteractEventArgs) {
		ev.IsAllowed = false
	})

	var kinds []Kind
	var finalAllowed = true
	sub := bus.Observe(func(kind Kind, payload any) {
		kinds = append(kinds, kind)
		if ev, ok := payload.(*DoorInteractEventArgs); ok {
			finalAllowed = ev.IsAllowed
		}
	})

	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
	GeneratorFinish.Dispatch(bus, NewGeneratorFinishEventArgs(&types.Generator{ID: 1}))

	if len(kinds) != 2 || kinds[0] != KindDoorInteract || kinds[1] != KindGeneratorFinish {
		t.Errorf("unexpected observed kinds: %v", kinds)
	}
	if finalAllowed {
		t.Errorf("expected observer to see the final decision")
	}

	sub.Unsubscribe()
	if bus.Has(KindGeneratorFinish) {
		t.Errorf("expected no registrations after removing the observer")
	}
}

func TestBus_ObserverFault(t *testing.T) {
	var faults []*SubscriberFault
	bus := newTestBus(&faults)

	bus.Observe(func(Kind, any) { panic("observer bug") }, WithOwner("audit"))
	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))

	if len(faults) != 1 || faults[0].Owner != "audit" {
		t.Fatalf("expected observer fault to be reported, got %v", faults)
	}
}

func TestBus_UnsubscribeOwner(t *testing.T) {
	bus := newTestBus(nil)

	DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {}, WithOwner("p1"))
	GeneratorOpen.Subscribe(bus, func(*GeneratorOpenEventArgs) {}, WithOwner("p1"))
	DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {}, WithOwner("p2"))
	bus.Observe(func(Kind, any) {}, WithOwner("p1"))

	if removed := bus.UnsubscribeOwner("p1"); removed != 3 {
		t.Errorf("expected 3 removals, got %d", removed)
	}
	if bus.Count(KindDoorInteract) != 1 {
		t.Errorf("expected p2's handler to remain")
	}
	if bus.Has(KindGeneratorOpen) {
		t.Errorf("expected generator topic to be empty")
	}
}

func TestBus_Close(t *testing.T) {
	bus := newTestBus(nil)

	var count int
	DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) { count++ })
	if err := bus.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	sub := DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) { count++ })
	DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))

	if count != 0 {
		t.Errorf("expected closed bus to drop registrations")
	}
	if sub.ID() != 0 {
		t.Errorf("expected inert subscription from closed bus")
	}
	if err := bus.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

func TestBus_ConcurrentSubscribeDispatch(t *testing.T) {
	bus := newTestBus(nil)

	var count int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := DoorInteract.Subscribe(bus, func(*DoorInteractEventArgs) {
				atomic.AddInt32(&count, 1)
			})
			defer sub.Unsubscribe()

			for j := 0; j < 10; j++ {
				DoorInteract.Dispatch(bus, NewDoorInteractEventArgs(nil, nil, true))
			}
		}()
	}

	wg.Wait()
	if atomic.LoadInt32(&count) == 0 {
		t.Errorf("expected at least the goroutine's own handler to run")
	}
	if bus.Count(KindDoorInteract) != 0 {
		t.Errorf("expected all handlers removed, got %d", bus.Count(KindDoorInteract))
	}
}
