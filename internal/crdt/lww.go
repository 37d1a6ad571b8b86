package crdt

import (
	"log/slog"
	"time"
)

// Record описывает сущность, которую умеет сливать LWW-резолвер.
// ModifiedAt возвращает нулевое время, если у записи нет updatedAt.
type Record interface {
	RecordID() string
	ModifiedAt() time.Time
}

// Stats содержит итоги одного слияния
type Stats struct {
	Added    int // новые записи с удаленной стороны
	Replaced int // локальные записи, замененные удаленными
	Kept     int // локальные записи, оказавшиеся новее удаленных
	Skipped  int // записи без id
}

// Merge объединяет локальную и удаленную коллекции по правилу Last-Write-Wins.
//
// Результат содержит ровно одну запись на каждый id из обеих коллекций.
// При равных временных метках побеждает удаленная запись: портал считается
// источником истины при почти одновременных правках. Отсутствующая метка
// трактуется как нулевое время.
//
// Входные срезы не изменяются. Порядок результата: локальный порядок,
// замененные записи остаются на своих местах, новые удаленные добавляются в конец.
func Merge[T Record](local, remote []T, logger *slog.Logger) ([]T, Stats) {
	if logger == nil {
		logger = slog.Default()
	}

	var stats Stats
	merged := make([]T, 0, len(local)+len(remote))
	index := make(map[string]int, len(local)+len(remote))

	// Сначала все локальные записи
	for _, rec := range local {
		id := rec.RecordID()
		if id == "" {
			logger.Warn("Skipping local record without id")
			stats.Skipped++
			continue
		}
		if pos, ok := index[id]; ok {
			merged[pos] = rec
			continue
		}
		index[id] = len(merged)
		merged = append(merged, rec)
	}

	// Затем накатываем удаленные
	for _, rec := range remote {
		id := rec.RecordID()
		if id == "" {
			logger.Warn("Skipping remote record without id")
			stats.Skipped++
			continue
		}

		pos, ok := index[id]
		if !ok {
			index[id] = len(merged)
			merged = append(merged, rec)
			stats.Added++
			continue
		}

		if !rec.ModifiedAt().Before(merged[pos].ModifiedAt()) {
			merged[pos] = rec
			stats.Replaced++
			continue
		}

		logger.Debug("Keeping local record (newer than remote)",
			"id", id,
			"local_updated_at", merged[pos].ModifiedAt(),
			"remote_updated_at", rec.ModifiedAt())
		stats.Kept++
	}

	return merged, stats
}
