// Package payrollservice derives vesting entitlements from a salary table.
//
// The module owns only the level -> salary mapping. Schedule creation and all
// drawdown bookkeeping are delegated to the vesting-ledger module through the
// ScheduleCreator port; payroll never touches ledger state directly.
package payrollservice
