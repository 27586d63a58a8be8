package domain

import (
	"time"

	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// CommitOutcome результат попытки коммита бронирования
type CommitOutcome string

const (
	OutcomeCommitted    CommitOutcome = "committed"
	OutcomeSlotConflict CommitOutcome = "slot_conflict"
	OutcomeCommitFailed CommitOutcome = "commit_failed"
)

// CommitAuditEntry запись журнала аудита попыток бронирования.
// Журнал наблюдательный: доступность слотов всегда вычисляется из ledger'а,
// никогда из этого журнала. Записи не изменяются и не удаляются.
type CommitAuditEntry struct {
	ID             int64
	SupplierID     string
	BookingDate    time.Time
	Slot           types.TimeString
	PackageCount   int
	PurchaseOrders []string
	Outcome        CommitOutcome
	Detail         *string // текст ошибки для неуспешных исходов
	RecordedAt     time.Time
}
