package sated

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HooksSuite struct {
	suite.Suite

	matches       []string
	misses        []Miss
	contentErrors []error

	registry *Registry
}

func (s *HooksSuite) SetupTest() {
	s.matches = nil
	s.misses = nil
	s.contentErrors = nil

	b := NewBuilder(
		WithOnMatch(func(tag string, index int) {
			s.matches = append(s.matches, tag)
		}),
		WithOnFallback(func(m Miss) {
			s.misses = append(s.misses, m)
		}),
		WithOnContentError(func(tag string, index int, err error) {
			s.contentErrors = append(s.contentErrors, err)
		}),
	)
	Add[uint64](b, "Number")
	Add[complexPayload](b, "Complex")
	Fallback[json.RawMessage](b)

	reg, err := b.Build()
	s.Require().NoError(err)
	s.registry = reg
}

func TestHooksSuite(t *testing.T) {
	suite.Run(t, new(HooksSuite))
}

func (s *HooksSuite) decode(raw string) (Union, error) {
	return s.registry.Decode([]byte(raw), "resourceType", "resource")
}

func (s *HooksSuite) TestOnMatchFiresBeforePayloadDecode() {
	_, err := s.decode(`{"resourceType": "Number", "resource": 2000}`)

	s.Require().NoError(err)
	s.Assert().Equal([]string{"Number"}, s.matches)
	s.Assert().Empty(s.misses)
	s.Assert().Empty(s.contentErrors)
}

func (s *HooksSuite) TestOnFallbackReportsTheMissReason() {
	tests := map[string]struct {
		raw  string
		miss Miss
	}{
		"unknown tag": {`{"resourceType": "Nope", "resource": 1}`, MissUnknownTag},
		"missing tag": {`{"resource": 1}`, MissNoTagField},
		"numeric tag": {`{"resourceType": 7}`, MissTagNotString},
		"array input": {`[1, 2]`, MissNotAMapping},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			s.SetupTest()

			u, err := s.decode(tt.raw)

			s.Require().NoError(err)
			s.Require().True(u.IsFallback())
			s.Assert().Equal([]Miss{tt.miss}, s.misses)
			s.Assert().Empty(s.matches)
		})
	}
}

func (s *HooksSuite) TestOnContentErrorFiresAndFallbackDoesNot() {
	_, err := s.decode(`{"resourceType": "Complex", "resource": {"a": 2000}}`)

	var cerr *ContentError
	s.Require().ErrorAs(err, &cerr)

	// The match happened, the content failed, and the fallback stayed out
	// of it.
	s.Assert().Equal([]string{"Complex"}, s.matches)
	s.Require().Len(s.contentErrors, 1)
	s.Assert().ErrorIs(cerr, s.contentErrors[0])
	s.Assert().Empty(s.misses)
}

func (s *HooksSuite) TestMultipleHooksRunInOrder() {
	var order []string

	b := NewBuilder(
		WithOnMatch(func(tag string, index int) { order = append(order, "first") }),
		WithOnMatch(func(tag string, index int) { order = append(order, "second") }),
	)
	Add[uint64](b, "Number")
	reg, err := b.Build()
	s.Require().NoError(err)

	_, err = reg.Decode([]byte(`{"resourceType": "Number", "resource": 1}`), "resourceType", "resource")

	s.Require().NoError(err)
	s.Assert().Equal([]string{"first", "second"}, order)
}

func (s *HooksSuite) TestContentErrorWrapsDecoderErrorVerbatim() {
	_, err := s.decode(`{"resourceType": "Complex", "resource": {"a": 2000}}`)

	var cerr *ContentError
	s.Require().ErrorAs(err, &cerr)
	s.Assert().Equal(1, cerr.Index)
	s.Assert().EqualError(cerr.Err, `missing field "b"`)
}
