package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavegrid/internal/anim"
)

var _ = Describe("State", func() {
	var s anim.State

	BeforeEach(func() {
		s = anim.DefaultState()
	})

	It("starts with the mount defaults", func() {
		Expect(s.Rows).To(Equal(15))
		Expect(s.Cols).To(Equal(20))
		Expect(s.Position).To(Equal(0))
		Expect(s.Direction).To(Equal(anim.Right))
		Expect(s.Phase).To(Equal(0))
		Expect(s.Playing).To(BeTrue())
		Expect(s.SpeedMs).To(Equal(150))
	})

	Describe("Tick", func() {
		It("reaches the right bound after 17 ticks on 20 columns", func() {
			for i := 0; i < 16; i++ {
				s.Tick()
			}
			Expect(s.Position).To(Equal(16))
			Expect(s.Direction).To(Equal(anim.Right))

			s.Tick()
			Expect(s.Position).To(Equal(17))
			Expect(s.Direction).To(Equal(anim.Left))

			s.Tick()
			Expect(s.Position).To(Equal(16))
			Expect(s.Direction).To(Equal(anim.Left))
		})

		It("bounces back to the left bound", func() {
			s.Position = 1
			s.Direction = anim.Left
			s.Tick()
			Expect(s.Position).To(Equal(0))
			Expect(s.Direction).To(Equal(anim.Right))
			s.Tick()
			Expect(s.Position).To(Equal(1))
		})

		It("never leaves the bounds and flips only at them", func() {
			for _, cols := range []int{5, 6, 13, 20, 30} {
				s = anim.DefaultState()
				s.SetCols(cols)
				for i := 0; i < 500; i++ {
					before := s.Direction
					s.Tick()
					Expect(s.Position).To(BeNumerically(">=", 0))
					Expect(s.Position).To(BeNumerically("<=", cols-3))
					if s.Direction != before {
						Expect(s.Position).To(BeElementOf(0, cols-3))
					}
				}
			}
		})

		It("wraps the phase at 240", func() {
			s.Phase = 239
			s.Tick()
			Expect(s.Phase).To(Equal(0))
		})

		It("moves the band exactly every 40 ticks", func() {
			band := s.Stats().Band
			for i := 1; i <= 480; i++ {
				s.Tick()
				next := s.Stats().Band
				if i%40 == 0 {
					Expect(next).NotTo(Equal(band))
				} else {
					Expect(next).To(Equal(band))
				}
				band = next
			}
		})
	})

	Describe("Reset", func() {
		It("rewinds regardless of prior state", func() {
			s.Position, s.Direction, s.Phase = 9, anim.Left, 201
			s.Playing = false
			s.SetRows(7)
			s.SetSpeed(300)

			s.Reset()
			Expect(s.Position).To(Equal(0))
			Expect(s.Direction).To(Equal(anim.Right))
			Expect(s.Phase).To(Equal(0))
			Expect(s.Playing).To(BeFalse())
			Expect(s.Rows).To(Equal(7))
			Expect(s.SpeedMs).To(Equal(300))
		})
	})

	Describe("setters", func() {
		It("clamps dimensions", func() {
			Expect(s.SetRows(100)).To(BeTrue())
			Expect(s.Rows).To(Equal(anim.MaxDim))
			s.SetCols(-4)
			Expect(s.Cols).To(Equal(anim.MinDim))
			Expect(s.SetCols(2)).To(BeFalse())
		})

		It("pulls the wave inside a shrunken grid", func() {
			s.Position = 17
			s.SetCols(8)
			Expect(s.Position).To(Equal(5))
		})

		It("clamps speed", func() {
			s.SetSpeed(10)
			Expect(s.SpeedMs).To(Equal(anim.MinSpeed))
			s.SetSpeed(9000)
			Expect(s.SpeedMs).To(Equal(anim.MaxSpeed))
		})

		It("produces a 5x5 frame after resizing", func() {
			s.SetRows(5)
			s.SetCols(5)
			frame := s.Frame()
			Expect(frame).To(HaveLen(5))
			for _, row := range frame {
				Expect(row).To(HaveLen(5))
			}
		})
	})

	DescribeTable("ParseDimension",
		func(input string, want int) {
			Expect(anim.ParseDimension(input)).To(Equal(want))
		},
		Entry("in range", "12", 12),
		Entry("padded", " 17 ", 17),
		Entry("too large", "99", 30),
		Entry("too small", "1", 5),
		Entry("negative", "-3", 5),
		Entry("garbage", "abc", 5),
		Entry("empty", "", 5),
	)

	Describe("Stats", func() {
		It("reports band and countdown", func() {
			st := s.Stats()
			Expect(st.Band).To(Equal(1))
			Expect(st.SecondsToNextBand).To(Equal(6))
			Expect(st.Direction).To(Equal("→"))

			s.Phase = 239
			s.Direction = anim.Left
			st = s.Stats()
			Expect(st.Band).To(Equal(6))
			Expect(st.SecondsToNextBand).To(Equal(1))
			Expect(st.Direction).To(Equal("←"))
		})
	})
})
