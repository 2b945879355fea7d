package domain

// Time format constants
const (
	// DateFormat формат даты во входных данных и CSV-выгрузках клиники (M/D/YYYY).
	// time.Parse с этим layout принимает и вариант с ведущими нулями (MM/DD/YYYY)
	DateFormat = "1/2/2006"

	// DateKeyFormat канонический формат даты для ключей и логов
	DateKeyFormat = "2006-01-02"
)
