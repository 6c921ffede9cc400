package domain

import "time"

const HistoryLimit = 100

type HistoryItem struct {
	ID        string
	Query     string
	Expert    ExpertID
	Mode      SearchMode
	Timestamp time.Time
}
