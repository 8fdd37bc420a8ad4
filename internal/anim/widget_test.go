package anim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavegrid/internal/anim"
)

var _ = Describe("Widget", func() {
	var w *anim.Widget

	BeforeEach(func() {
		w = anim.NewWidget(anim.DefaultState())
		Expect(w.Start()).To(BeTrue())
	})

	It("applies live ticks", func() {
		Expect(w.Fire(w.Generation())).To(BeTrue())
		Expect(w.State().Position).To(Equal(1))
		Expect(w.State().Phase).To(Equal(1))
	})

	It("drops ticks from before a pause", func() {
		gen := w.Generation()
		Expect(w.TogglePlay()).To(BeFalse())
		Expect(w.Armed()).To(BeFalse())
		Expect(w.Fire(gen)).To(BeFalse())
		Expect(w.State().Position).To(Equal(0))
	})

	It("resumes without jumping", func() {
		for i := 0; i < 5; i++ {
			w.Fire(w.Generation())
		}
		stale := w.Generation()
		w.TogglePlay()
		Expect(w.Fire(stale)).To(BeFalse())

		Expect(w.TogglePlay()).To(BeTrue())
		Expect(w.Fire(stale)).To(BeFalse())
		Expect(w.Fire(w.Generation())).To(BeTrue())

		st := w.State()
		Expect(st.Position).To(Equal(6))
		Expect(st.Phase).To(Equal(6))
	})

	It("restarts the interval on speed change", func() {
		gen := w.Generation()
		Expect(w.SetSpeed(300)).To(BeTrue())
		Expect(w.Generation()).NotTo(Equal(gen))
		Expect(w.Interval()).To(Equal(300 * time.Millisecond))
		Expect(w.Fire(gen)).To(BeFalse())
	})

	It("does not restart when speed is unchanged", func() {
		gen := w.Generation()
		Expect(w.SetSpeed(150)).To(BeFalse())
		Expect(w.Generation()).To(Equal(gen))
	})

	It("restarts on column change but not on row change", func() {
		gen := w.Generation()
		w.SetRows(8)
		Expect(w.Generation()).To(Equal(gen))
		Expect(w.SetCols(10)).To(BeTrue())
		Expect(w.Generation()).NotTo(Equal(gen))
	})

	It("restarts when the direction flips", func() {
		w.SetCols(5)
		w.Fire(w.Generation())
		gen := w.Generation()
		Expect(w.Fire(gen)).To(BeTrue())
		Expect(w.State().Direction).To(Equal(anim.Left))
		Expect(w.Generation()).NotTo(Equal(gen))
	})

	It("does not arm while paused", func() {
		w.TogglePlay()
		Expect(w.SetSpeed(400)).To(BeFalse())
		Expect(w.SetCols(12)).To(BeFalse())
		Expect(w.Armed()).To(BeFalse())
	})

	It("keeps play state across reset", func() {
		w.Fire(w.Generation())
		w.Reset()
		st := w.State()
		Expect(st.Position).To(Equal(0))
		Expect(st.Phase).To(Equal(0))
		Expect(st.Playing).To(BeTrue())
		Expect(w.Armed()).To(BeTrue())
	})

	It("cancels everything on close", func() {
		gen := w.Generation()
		w.Close()
		Expect(w.Fire(gen)).To(BeFalse())
		Expect(w.TogglePlay()).To(BeFalse())
		Expect(w.Start()).To(BeFalse())
		Expect(w.Advance(time.Second)).To(BeFalse())
	})

	It("clamps the initial state", func() {
		w = anim.NewWidget(anim.State{Rows: 99, Cols: 1, Position: 40, Phase: -1, SpeedMs: 1})
		st := w.State()
		Expect(st.Rows).To(Equal(30))
		Expect(st.Cols).To(Equal(5))
		Expect(st.Position).To(Equal(2))
		Expect(st.Phase).To(Equal(239))
		Expect(st.SpeedMs).To(Equal(50))
		Expect(st.Direction).To(Equal(anim.Right))
	})

	Context("driven by a frame loop", func() {
		It("fires once per elapsed interval", func() {
			Expect(w.Advance(100 * time.Millisecond)).To(BeFalse())
			Expect(w.Advance(60 * time.Millisecond)).To(BeTrue())
			Expect(w.State().Position).To(Equal(1))
		})

		It("does not catch up on missed ticks", func() {
			Expect(w.Advance(10 * time.Second)).To(BeTrue())
			Expect(w.Advance(0)).To(BeFalse())
			Expect(w.State().Position).To(Equal(1))
		})
	})
})

var _ = Describe("Schedule", func() {
	It("bumps the generation on every arm and disarm", func() {
		var s anim.Schedule
		g1 := s.Arm(time.Second)
		Expect(s.Live(g1)).To(BeTrue())
		s.Disarm()
		Expect(s.Live(g1)).To(BeFalse())
		g2 := s.Arm(time.Second)
		Expect(g2).To(BeNumerically(">", g1))
		Expect(s.Live(g1)).To(BeFalse())
		Expect(s.Interval()).To(Equal(time.Second))
	})

	It("ignores negative elapsed time", func() {
		var s anim.Schedule
		s.Arm(time.Millisecond)
		Expect(s.Advance(-time.Second)).To(BeFalse())
	})
})
