package sated

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BuilderSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func (s *BuilderSuite) TestBuildRejectsDuplicateTag() {
	b := NewBuilder()
	Add[uint64](b, "Number")
	Add[string](b, "String")
	Add[int64](b, "Number")

	_, err := b.Build()

	s.Require().ErrorIs(err, ErrDuplicateTag)

	var derr *DuplicateTagError
	s.Require().ErrorAs(err, &derr)
	s.Assert().Equal("Number", derr.Tag)
}

func (s *BuilderSuite) TestBuildRejectsMultipleFallbacks() {
	b := NewBuilder()
	Add[uint64](b, "Number")
	Fallback[json.RawMessage](b)
	Fallback[map[string]any](b)

	_, err := b.Build()

	s.Assert().ErrorIs(err, ErrMultipleFallbacks)
}

func (s *BuilderSuite) TestBuildAcceptsZeroCases() {
	reg, err := NewBuilder().Build()

	s.Require().NoError(err)
	s.Assert().Empty(reg.Tags())
	s.Assert().False(reg.HasFallback())
}

func (s *BuilderSuite) TestBuildAcceptsZeroFallbacks() {
	b := NewBuilder()
	Add[uint64](b, "Number")

	reg, err := b.Build()

	s.Require().NoError(err)
	s.Assert().False(reg.HasFallback())
}

func (s *BuilderSuite) TestBuildWithFallback() {
	b := NewBuilder()
	Add[uint64](b, "Number")
	Fallback[map[string]any](b)

	reg, err := b.Build()

	s.Require().NoError(err)
	s.Assert().True(reg.HasFallback())
}

func (s *BuilderSuite) TestTagsPreserveRegistrationOrder() {
	b := NewBuilder()
	Add[uint64](b, "Number")
	Add[string](b, "String")
	Add[complexPayload](b, "Complex")

	reg, err := b.Build()

	s.Require().NoError(err)
	s.Assert().Equal([]string{"Number", "String", "Complex"}, reg.Tags())
}

func (s *BuilderSuite) TestTagsReturnsACopy() {
	b := NewBuilder()
	Add[uint64](b, "Number")

	reg, err := b.Build()
	s.Require().NoError(err)

	tags := reg.Tags()
	tags[0] = "mutated"

	s.Assert().Equal([]string{"Number"}, reg.Tags())
}

func (s *BuilderSuite) TestRegistryIsIndependentOfBuilder() {
	b := NewBuilder()
	Add[uint64](b, "Number")

	reg, err := b.Build()
	s.Require().NoError(err)

	// Registering more cases after Build must not leak into the registry.
	Add[string](b, "String")

	s.Assert().Equal([]string{"Number"}, reg.Tags())
}
