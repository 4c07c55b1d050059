package stablelist_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/mgnsk/stablelist"
)

var _ = Describe("inserting around an iterator", func() {
	var (
		l  *stablelist.List[string]
		it *stablelist.Iterator[string]
	)

	BeforeEach(func() {
		l = stablelist.From([]string{"quz", "foo", "bar"})

		var err error
		it, err = l.Begin().Next()
		Expect(err).NotTo(HaveOccurred())
	})

	It("keeps referencing its element", func() {
		v, ok := it.Get()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("foo"))

		Expect(it.InsertBefore("FOO", "BAR")).To(Succeed())

		Expect(l.Flatten()).To(Equal([]string{"quz", "FOO", "BAR", "foo", "bar"}))

		v, ok = it.Get()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("foo"))
		Expect(l.Verify()).To(Succeed())
	})

	It("survives insertions after it and at both ends", func() {
		Expect(it.InsertAfter("baz")).To(Succeed())
		l.Push("tail")
		l.Unshift("head")

		Expect(l.Flatten()).To(Equal([]string{"head", "quz", "foo", "baz", "bar", "tail"}))

		v, _ := it.Get()
		Expect(v).To(Equal("foo"))
	})

	It("survives erasure of its neighbours", func() {
		prev, err := it.Previous()
		Expect(err).NotTo(HaveOccurred())
		next, err := it.Next()
		Expect(err).NotTo(HaveOccurred())

		_, err = prev.Remove()
		Expect(err).NotTo(HaveOccurred())
		_, err = next.Remove()
		Expect(err).NotTo(HaveOccurred())

		Expect(it.State()).To(Equal(stablelist.Live))
		Expect(l.Flatten()).To(Equal([]string{"foo"}))

		front, _ := l.Front()
		back, _ := l.Back()
		Expect(front).To(Equal("foo"))
		Expect(back).To(Equal("foo"))
		Expect(l.Verify()).To(Succeed())
	})
})

var _ = Describe("removing through an iterator", func() {
	var l *stablelist.List[string]

	BeforeEach(func() {
		l = stablelist.From([]string{"quz", "foo", "bar"})
	})

	It("relinks the neighbours of a middle element", func() {
		it, err := l.Begin().Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(it.InsertBefore("FOO")).To(Succeed())
		Expect(l.Flatten()).To(Equal([]string{"quz", "FOO", "foo", "bar"}))

		prev, err := it.Previous()
		Expect(err).NotTo(HaveOccurred())

		v, err := prev.Remove()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("FOO"))

		Expect(l.Flatten()).To(Equal([]string{"quz", "foo", "bar"}))
		Expect(l.Len()).To(Equal(3))
		Expect(l.Verify()).To(Succeed())
	})

	It("leaves the iterator dead", func() {
		it, err := l.Begin().Next()
		Expect(err).NotTo(HaveOccurred())

		v, err := it.Remove()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("foo"))

		Expect(it.State()).To(Equal(stablelist.Dead))
		Expect(it.Valid()).To(BeFalse())

		_, ok := it.Get()
		Expect(ok).To(BeFalse())

		_, err = it.Next()
		Expect(errors.Is(err, stablelist.ErrStaleIterator)).To(BeTrue())
		Expect(errors.Is(err, stablelist.ErrIteratorExhausted)).To(BeTrue())

		_, err = it.Previous()
		Expect(errors.Is(err, stablelist.ErrStaleIterator)).To(BeTrue())

		_, err = it.Remove()
		Expect(errors.Is(err, stablelist.ErrStaleIterator)).To(BeTrue())

		Expect(errors.Is(it.InsertAfter("x"), stablelist.ErrStaleIterator)).To(BeTrue())
		Expect(errors.Is(it.InsertBefore("x"), stablelist.ErrStaleIterator)).To(BeTrue())

		Expect(l.Flatten()).To(Equal([]string{"quz", "bar"}))
	})

	It("kills every iterator at the erased element", func() {
		a := l.End()
		b := l.End()

		_, err := l.Erase(a)
		Expect(err).NotTo(HaveOccurred())

		Expect(b.State()).To(Equal(stablelist.Dead))
		_, err = b.Previous()
		Expect(errors.Is(err, stablelist.ErrStaleIterator)).To(BeTrue())

		back, _ := l.Back()
		Expect(back).To(Equal("foo"))
	})

	It("empties the list when removing the only element", func() {
		single := stablelist.From([]string{"only"})

		_, err := single.Begin().Remove()
		Expect(err).NotTo(HaveOccurred())

		Expect(single.Empty()).To(BeTrue())
		_, ok := single.Front()
		Expect(ok).To(BeFalse())
		_, ok = single.Back()
		Expect(ok).To(BeFalse())
		Expect(single.Verify()).To(Succeed())
	})
})

var _ = Describe("navigating", func() {
	It("walks the list in both directions", func() {
		l := stablelist.From([]int{1, 2, 3})

		var forward []int
		for it := l.Begin(); it.Valid(); {
			v, _ := it.Get()
			forward = append(forward, v)

			var err error
			it, err = it.Next()
			Expect(err).NotTo(HaveOccurred())
		}

		var backward []int
		for it := l.End(); it.Valid(); {
			v, _ := it.Get()
			backward = append(backward, v)

			var err error
			it, err = it.Previous()
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(forward).To(Equal([]int{1, 2, 3}))
		Expect(backward).To(Equal([]int{3, 2, 1}))
	})

	It("yields a boundary iterator past the ends", func() {
		l := stablelist.From([]int{1})

		past, err := l.End().Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(past.State()).To(Equal(stablelist.Boundary))

		_, ok := past.Get()
		Expect(ok).To(BeFalse())

		before, err := l.Begin().Previous()
		Expect(err).NotTo(HaveOccurred())
		Expect(before.State()).To(Equal(stablelist.Boundary))
	})

	It("refuses to navigate from a boundary iterator", func() {
		var l stablelist.List[int]

		_, err := l.Begin().Next()
		Expect(errors.Is(err, stablelist.ErrIteratorExhausted)).To(BeTrue())
		Expect(errors.Is(err, stablelist.ErrStaleIterator)).To(BeFalse())

		_, err = l.End().Previous()
		Expect(errors.Is(err, stablelist.ErrIteratorExhausted)).To(BeTrue())

		_, err = l.Begin().Remove()
		Expect(errors.Is(err, stablelist.ErrIteratorExhausted)).To(BeTrue())
	})

	It("always carries its owning list", func() {
		l := stablelist.From([]int{1})

		Expect(l.End().InsertAfter(2)).To(Succeed())
		Expect(l.Begin().InsertBefore(0)).To(Succeed())
		Expect(l.Flatten()).To(Equal([]int{0, 1, 2}))
	})
})

var _ = Describe("iterator states", func() {
	DescribeTable("String",
		func(s stablelist.State, expected string) {
			Expect(s.String()).To(Equal(expected))
		},
		Entry("live", stablelist.Live, "live"),
		Entry("boundary", stablelist.Boundary, "boundary"),
		Entry("dead", stablelist.Dead, "dead"),
		Entry("unknown", stablelist.State(42), "unknown"),
	)
})
