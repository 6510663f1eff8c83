package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockAutomationRepositoryForTest creates a new mock AutomationRepository for testing
func NewMockAutomationRepositoryForTest(t *testing.T) *MockAutomationRepository {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAutomationRepository(ctrl)
}

// NewMockWalletClientForTest creates a new mock WalletClient for testing
func NewMockWalletClientForTest(t *testing.T) *MockWalletClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockWalletClient(ctrl)
}

// NewMockBytecodeReaderForTest creates a new mock BytecodeReader for testing
func NewMockBytecodeReaderForTest(t *testing.T) *MockBytecodeReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBytecodeReader(ctrl)
}

// NewMockTrackingPublisherForTest creates a new mock TrackingPublisher for testing
func NewMockTrackingPublisherForTest(t *testing.T) *MockTrackingPublisher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTrackingPublisher(ctrl)
}
