package dispatch

import (
	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/state"
)

// ExpectedResponse reports which inbound function code, if any, resolves
// the given WaitFor*Response state, per spec.md §4.4's response
// correlation rule: a bring-up response is only accepted while the state
// machine is in the matching wait state, and any other inbound traffic
// received during that wait is handled (softkeys etc. can still arrive)
// but never advances the state machine.
func ExpectedResponse(s state.State) (protocol.Function, bool) {
	switch s {
	case state.WaitForGetMemoryResponse:
		return protocol.FuncGetMemory, true
	case state.WaitForGetNumberSoftkeysResponse:
		return protocol.FuncGetNumberOfSoftKeys, true
	case state.WaitForGetTextFontDataResponse:
		return protocol.FuncGetTextFontData, true
	case state.WaitForGetHardwareResponse:
		return protocol.FuncGetHardware, true
	case state.WaitForGetVersionsResponse:
		return protocol.FuncGetVersionsResponse, true
	case state.WaitForLoadVersionResponse:
		return protocol.FuncLoadVersion, true
	case state.WaitForDeleteVersionResponse:
		return protocol.FuncDeleteVersion, true
	case state.WaitForEndOfObjectPoolResponse:
		return protocol.FuncEndOfObjectPool, true
	default:
		return 0, false
	}
}

// IsBringUpResponse reports whether fn is one of the bring-up response
// codes that ExpectedResponse can ever return, independent of current
// state — used to decide whether an out-of-sequence response should be
// silently dropped rather than treated as an unrecognized frame.
func IsBringUpResponse(fn protocol.Function) bool {
	switch fn {
	case protocol.FuncGetMemory,
		protocol.FuncGetNumberOfSoftKeys,
		protocol.FuncGetTextFontData,
		protocol.FuncGetHardware,
		protocol.FuncGetVersionsResponse,
		protocol.FuncLoadVersion,
		protocol.FuncDeleteVersion,
		protocol.FuncEndOfObjectPool:
		return true
	default:
		return false
	}
}
