package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fogoseda/party-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "session not found",
			expected: "NOT_FOUND: session not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "action already pending",
			expected: "FAILED_PRECONDITION: action already pending",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("session not found").
		WithMeta("session_id", "sess_123").
		WithMeta("variant", "board")

	s.Assert().Equal("sess_123", err.Meta["session_id"])
	s.Assert().Equal("board", err.Meta["variant"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.NotFound("session not found")
	wrapped := errors.Wrap(inner, "failed to load game")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().ErrorIs(wrapped, inner)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	inner := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(inner, "failed to save session")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	inner := fmt.Errorf("corrupt payload")
	wrapped := errors.WrapWithCode(inner, errors.CodeDataLoss, "saved state unreadable")

	s.Assert().Equal(errors.CodeDataLoss, wrapped.Code)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeOutOfRange, errors.GetCode(errors.OutOfRange("position")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("SessionRepo")
	vb.Fieldf("NoRepeat", "must be between %d and %d", 6, 20)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "SessionRepo")
	s.Assert().Contains(err.Error(), "NoRepeat")
}

func (s *ErrorsTestSuite) TestValidationBuilderEmpty() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ErrorsTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("no_repeat", 25, 6, 20, vb)
	s.Assert().Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("no_repeat", 12, 6, 20, vb)
	s.Assert().NoError(vb.Build())
}
