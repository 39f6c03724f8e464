package election

import (
	"cmp"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"panchayat/internal/models"
	"panchayat/internal/validator"
)

func roster() []models.Candidate {
	return []models.Candidate{
		{ID: "C1", Name: "Sarpanch Ram", Party: "Janata"},
		{ID: "C2", Name: "Pradhan Sita", Party: "Lok"},
		{ID: "C3", Name: "Mukhiya Shyam", Party: "Gram"},
	}
}

func succeed(v models.Vote) string { return "voted:" + v.VoterID + "->" + v.CandidateID }

func fail(reason string) string { return "error:" + reason }

var _ = Describe("Election", func() {
	var e *Election

	BeforeEach(func() {
		e = New(roster())
	})

	Describe("RegisterVoter", func() {
		It("accepts a well-formed adult exactly once", func() {
			Expect(e.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 25})).To(BeTrue())
			Expect(e.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 25})).To(BeFalse())
			Expect(e.RegisteredVoters()).To(Equal(1))
		})

		It("accepts a voter who is exactly eighteen", func() {
			Expect(e.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 18})).To(BeTrue())
		})

		It("rejects under-age voters", func() {
			Expect(e.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 17})).To(BeFalse())
			Expect(e.RegisteredVoters()).To(BeZero())
		})

		It("rejects a voter without an age", func() {
			Expect(e.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan"})).To(BeFalse())
		})

		It("accepts empty id and name values", func() {
			Expect(e.RegisterVoter(models.Voter{ID: "V1", Age: 30})).To(BeTrue())
			Expect(e.RegisterVoter(models.Voter{Name: "Mohan", Age: 30})).To(BeTrue())
			Expect(e.RegisteredVoters()).To(Equal(2))
		})

		It("lowers the age bound with WithMinAge", func() {
			young := New(roster(), WithMinAge(16))
			Expect(young.RegisterVoter(models.Voter{ID: "V3", Name: "Asha", Age: 17})).To(BeTrue())
			Expect(young.RegisterVoter(models.Voter{ID: "V4", Name: "Ravi", Age: 15})).To(BeFalse())
		})

		It("raises the age bound with WithMinAge", func() {
			strict := New(roster(), WithMinAge(21))
			Expect(strict.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 20})).To(BeFalse())
			Expect(strict.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 21})).To(BeTrue())
		})

		It("applies the configured validator as well", func() {
			strict := New(roster(), WithValidator(validator.New(validator.Rules{
				MinAge:         21,
				RequiredFields: []string{"id", "name", "age"},
			})))
			Expect(strict.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 20})).To(BeFalse())
			Expect(strict.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 21})).To(BeTrue())
		})
	})

	Describe("RegisterRecord", func() {
		DescribeTable("accepts records with exactly id, name and age",
			func(record models.Record) {
				Expect(e.RegisterRecord(record)).To(BeTrue())
				Expect(e.RegisteredVoters()).To(Equal(1))
			},
			Entry("json number age", models.Record{"id": "V1", "name": "Mohan", "age": float64(25)}),
			Entry("empty name", models.Record{"id": "V1", "name": "", "age": 20}),
			Entry("null name", models.Record{"id": "V1", "name": nil, "age": 20}),
			Entry("empty id", models.Record{"id": "", "name": "Mohan", "age": 20}),
		)

		It("still rejects a duplicate empty id", func() {
			Expect(e.RegisterRecord(models.Record{"id": "", "name": "A", "age": 20})).To(BeTrue())
			Expect(e.RegisterRecord(models.Record{"id": "", "name": "B", "age": 30})).To(BeFalse())
		})

		DescribeTable("rejects malformed records",
			func(record models.Record) {
				Expect(e.RegisterRecord(record)).To(BeFalse())
				Expect(e.RegisteredVoters()).To(BeZero())
			},
			Entry("nil record", models.Record(nil)),
			Entry("missing field", models.Record{"id": "V1", "name": "Mohan"}),
			Entry("extra field", models.Record{"id": "V1", "name": "Mohan", "age": 25, "village": "Rampur"}),
			Entry("wrong key", models.Record{"id": "V1", "nickname": "Mohan", "age": 25}),
			Entry("under age", models.Record{"id": "V1", "name": "Mohan", "age": 16}),
			Entry("non numeric age", models.Record{"id": "V1", "name": "Mohan", "age": []int{1}}),
		)
	})

	Describe("CastVote", func() {
		BeforeEach(func() {
			Expect(e.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 25})).To(BeTrue())
		})

		It("returns the success callback's value", func() {
			Expect(CastVote(e, "V1", "C1", succeed, fail)).To(Equal("voted:V1->C1"))
			Expect(e.TotalVotes()).To(Equal(1))
		})

		It("passes the vote to the success callback", func() {
			var got models.Vote
			CastVote(e, "V1", "C2", func(v models.Vote) bool { got = v; return true }, func(string) bool { return false })
			Expect(got).To(Equal(models.Vote{VoterID: "V1", CandidateID: "C2"}))
		})

		It("rejects unknown voters first", func() {
			Expect(CastVote(e, "V9", "C9", succeed, fail)).To(Equal("error:Voter does not exist"))
		})

		It("rejects unknown candidates", func() {
			Expect(CastVote(e, "V1", "C9", succeed, fail)).To(Equal("error:Candidate does't exist"))
			Expect(e.TotalVotes()).To(BeZero())
		})

		It("rejects a second vote whatever the candidate", func() {
			Expect(CastVote(e, "V1", "C1", succeed, fail)).To(Equal("voted:V1->C1"))
			Expect(CastVote(e, "V1", "C1", succeed, fail)).To(Equal("error:This candidate has already voted."))
			Expect(CastVote(e, "V1", "C2", succeed, fail)).To(Equal("error:This candidate has already voted."))
			Expect(e.TotalVotes()).To(Equal(1))
		})

		It("checks the candidate before the duplicate vote", func() {
			CastVote(e, "V1", "C1", succeed, fail)
			Expect(CastVote(e, "V1", "C9", succeed, fail)).To(Equal("error:Candidate does't exist"))
		})

		It("invokes exactly one callback", func() {
			var successes, errors int
			onSuccess := func(models.Vote) int { successes++; return 1 }
			onError := func(string) int { errors++; return -1 }

			Expect(CastVote(e, "V1", "C1", onSuccess, onError)).To(Equal(1))
			Expect(CastVote(e, "V1", "C1", onSuccess, onError)).To(Equal(-1))
			Expect(successes).To(Equal(1))
			Expect(errors).To(Equal(1))
		})

		It("returns the zero value when the callback is missing", func() {
			Expect(CastVote[string](e, "V1", "C1", nil, fail)).To(BeEmpty())
			Expect(e.TotalVotes()).To(Equal(1))
		})
	})

	Describe("Cast", func() {
		It("returns sentinel errors", func() {
			e.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 25})

			_, err := e.Cast("nobody", "C1")
			Expect(err).To(MatchError(ErrVoterNotFound))

			_, err = e.Cast("V1", "nobody")
			Expect(err).To(MatchError(ErrCandidateNotFound))

			vote, err := e.Cast("V1", "C3")
			Expect(err).NotTo(HaveOccurred())
			Expect(vote).To(Equal(models.Vote{VoterID: "V1", CandidateID: "C3"}))

			_, err = e.Cast("V1", "C3")
			Expect(err).To(MatchError(ErrAlreadyVoted))
		})
	})

	Describe("Results", func() {
		castAll := func(pairs ...string) {
			for i := 0; i < len(pairs); i += 2 {
				e.RegisterVoter(models.Voter{ID: pairs[i], Name: "voter " + pairs[i], Age: 30})
				_, err := e.Cast(pairs[i], pairs[i+1])
				Expect(err).NotTo(HaveOccurred())
			}
		}

		It("lists every candidate with zero votes before any cast", func() {
			results := e.Results(nil)
			Expect(results).To(HaveLen(3))
			for _, r := range results {
				Expect(r.Votes).To(BeZero())
			}
			Expect(results[0].ID).To(Equal("C1"))
			Expect(results[2].ID).To(Equal("C3"))
		})

		It("sorts by votes descending and keeps roster order on ties", func() {
			castAll("V1", "C3", "V2", "C2", "V3", "C3")

			results := e.Results(nil)
			Expect(results).To(Equal([]models.Result{
				{ID: "C3", Name: "Mukhiya Shyam", Party: "Gram", Votes: 2},
				{ID: "C2", Name: "Pradhan Sita", Party: "Lok", Votes: 1},
				{ID: "C1", Name: "Sarpanch Ram", Party: "Janata", Votes: 0},
			}))
		})

		It("keeps roster order among equal counts", func() {
			castAll("V1", "C2", "V2", "C3")

			ids := []string{}
			for _, r := range e.Results(nil) {
				ids = append(ids, r.ID)
			}
			Expect(ids).To(Equal([]string{"C2", "C3", "C1"}))
		})

		It("uses a supplied comparator", func() {
			castAll("V1", "C1", "V2", "C1")

			byName := func(a, b models.Result) int { return cmp.Compare(a.Name, b.Name) }
			results := e.Results(byName)
			Expect(results[0].Name).To(Equal("Mukhiya Shyam"))
			Expect(results[1].Name).To(Equal("Pradhan Sita"))
			Expect(results[2].Name).To(Equal("Sarpanch Ram"))
			Expect(results[2].Votes).To(Equal(2))
		})

		It("recomputes counts after every cast", func() {
			castAll("V1", "C1")
			Expect(e.Results(nil)[0].Votes).To(Equal(1))
			castAll("V2", "C1")
			Expect(e.Results(nil)[0].Votes).To(Equal(2))
		})

		It("sums to the number of recorded votes", func() {
			castAll("V1", "C1", "V2", "C2", "V3", "C1", "V4", "C3", "V5", "C1")

			total := 0
			for _, r := range e.Results(nil) {
				total += r.Votes
			}
			Expect(total).To(Equal(e.TotalVotes()))
			Expect(e.Tally()).To(Equal(models.Tally{"C1": 3, "C2": 1, "C3": 1}))
		})

		It("never mutates the roster", func() {
			candidates := roster()
			session := New(candidates)
			session.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 30})
			session.Cast("V1", "C2")

			results := session.Results(nil)
			results[0].Name = "changed"

			Expect(candidates).To(Equal(roster()))
			Expect(session.Candidates()).To(Equal(roster()))
		})
	})

	Describe("Winner", func() {
		It("is absent before any vote", func() {
			e.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 30})
			_, ok := e.Winner()
			Expect(ok).To(BeFalse())
		})

		It("is the candidate with the highest count", func() {
			for i, c := range []string{"C2", "C3", "C3"} {
				id := fmt.Sprintf("V%d", i)
				e.RegisterVoter(models.Voter{ID: id, Name: "voter", Age: 30})
				e.Cast(id, c)
			}
			winner, ok := e.Winner()
			Expect(ok).To(BeTrue())
			Expect(winner).To(Equal(models.Candidate{ID: "C3", Name: "Mukhiya Shyam", Party: "Gram"}))
		})

		It("prefers the earliest listed candidate on ties", func() {
			for i, c := range []string{"C3", "C2"} {
				id := fmt.Sprintf("V%d", i)
				e.RegisterVoter(models.Voter{ID: id, Name: "voter", Age: 30})
				e.Cast(id, c)
			}
			winner, ok := e.Winner()
			Expect(ok).To(BeTrue())
			Expect(winner.ID).To(Equal("C2"))
		})

		It("is absent for an empty roster", func() {
			empty := New(nil)
			_, ok := empty.Winner()
			Expect(ok).To(BeFalse())
			Expect(empty.Results(nil)).To(BeEmpty())
		})
	})

	It("runs a full village election", func() {
		session := New([]models.Candidate{
			{ID: "C1", Name: "Sarpanch Ram", Party: "Janata"},
			{ID: "C2", Name: "Pradhan Sita", Party: "Lok"},
		})
		Expect(session.ID()).NotTo(BeEmpty())
		Expect(session.RegisterVoter(models.Voter{ID: "V1", Name: "Mohan", Age: 20})).To(BeTrue())
		Expect(session.RegisterVoter(models.Voter{ID: "V2", Name: "Geeta", Age: 25})).To(BeTrue())

		Expect(CastVote(session, "V1", "C1", succeed, fail)).To(Equal("voted:V1->C1"))
		Expect(CastVote(session, "V2", "C1", succeed, fail)).To(Equal("voted:V2->C1"))
		Expect(CastVote(session, "V1", "C2", succeed, fail)).To(Equal("error:This candidate has already voted."))

		results := session.Results(nil)
		Expect(results[0].ID).To(Equal("C1"))
		Expect(results[0].Votes).To(Equal(2))
		Expect(results[1].ID).To(Equal("C2"))
		Expect(results[1].Votes).To(BeZero())

		winner, ok := session.Winner()
		Expect(ok).To(BeTrue())
		Expect(winner.ID).To(Equal("C1"))
	})
})
