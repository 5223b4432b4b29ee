package model

import "time"

// Testimonial описывает отзыв, отправленный пользователем.
// Идентификатор присваивается хранилищем и никогда не переиспользуется;
// после создания меняется только флаг Approved (переключением).
type Testimonial struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
