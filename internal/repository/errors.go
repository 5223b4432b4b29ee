package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если активность отсутствует в ростере.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadyEnrolled возвращается при повторной записи того же email на активность.
	ErrAlreadyEnrolled = errors.New("student is already signed up")

	// ErrNotEnrolled возвращается, если email не записан на активность.
	ErrNotEnrolled = errors.New("student is not signed up")

	// ErrTestimonialNotFound возвращается, если отзыв не найден в БД.
	ErrTestimonialNotFound = errors.New("testimonial not found")
)
