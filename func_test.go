package logtimer

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

func timedWorkload() {
	defer Func()()
}

func patternedWorkload() {
	defer Func("Loader::%s")()
}

func literalWorkload() {
	defer Func("PRELOAD")()
}

func announcedWorkload() {
	defer StartingFunc()()
}

func leveledWorkload() {
	defer FuncAt(InfoLevel)()
}

var _ = Describe("Function timers", func() {
	var (
		mockCtrl *gomock.Controller
		backend  *MockBackend
		records  []Record
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		backend = NewMockBackend(mockCtrl)
		records = nil
		backend.EXPECT().
			Log(gomock.Any()).
			Do(func(r Record) { records = append(records, r) }).
			AnyTimes()
		SetBackend(backend)
	})

	AfterEach(func() {
		SetBackend(nil)
		mockCtrl.Finish()
	})

	It("should name the timer after the calling function", func() {
		backend.EXPECT().Enabled(DebugLevel, "timedWorkload()").Return(true)

		timedWorkload()

		Expect(records).To(HaveLen(1))
		Expect(records[0].Target).To(Equal(TargetFinished))
		Expect(records[0].Message).To(HavePrefix("timedWorkload(), Elapsed="))
		Expect(records[0].Origin.File).To(Equal("func_test.go"))
	})

	It("should substitute the function name into a %s pattern", func() {
		backend.EXPECT().Enabled(DebugLevel, "Loader::patternedWorkload").Return(true)

		patternedWorkload()

		Expect(records).To(HaveLen(1))
		Expect(records[0].Message).To(HavePrefix("Loader::patternedWorkload, Elapsed="))
	})

	It("should use a pattern without %s verbatim", func() {
		backend.EXPECT().Enabled(DebugLevel, "PRELOAD").Return(true)

		literalWorkload()

		Expect(records).To(HaveLen(1))
		Expect(records[0].Message).To(HavePrefix("PRELOAD, Elapsed="))
	})

	It("should bracket an announced function with two records", func() {
		backend.EXPECT().Enabled(DebugLevel, "announcedWorkload()").Return(true)

		announcedWorkload()

		Expect(records).To(HaveLen(2))
		Expect(records[0].Target).To(Equal(TargetStarting))
		Expect(records[0].Message).To(Equal("announcedWorkload()"))
		Expect(records[1].Target).To(Equal(TargetFinished))
	})

	It("should stay silent when the level is disabled", func() {
		backend.EXPECT().Enabled(InfoLevel, "leveledWorkload()").Return(false)

		Expect(leveledWorkload).NotTo(Panic())
		Expect(records).To(BeEmpty())
	})
})
