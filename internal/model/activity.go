// Package model содержит доменные структуры для активностей и отзывов
package model

// Activity описывает внеклассную активность: описание, расписание,
// вместимость и упорядоченный список записанных участников (email'ы).
// MaxParticipants носит справочный характер и не ограничивает запись.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
