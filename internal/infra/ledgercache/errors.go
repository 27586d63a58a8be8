package ledgercache

import "errors"

var (
	// ErrReloadFailed возвращается, когда перезагрузка снапшота из удалённого
	// хранилища не удалась. Кэш никогда не отдаёт устаревший снапшот вместо
	// ошибки: устаревание не должно быть неотличимо от сбоя.
	ErrReloadFailed = errors.New("ledgercache: snapshot reload failed")
)
