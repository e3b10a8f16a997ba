package ws

import (
	"encoding/json"
	"time"
)

type WorkExperienceAddedEvent struct {
	Type             string `json:"type"`
	StudentID        string `json:"student_id"`
	WorkExperienceID string `json:"work_experience_id"`
	Timestamp        string `json:"timestamp"`
}

// NotifyWorkExperienceAdded pushes a work-experience notification to every
// connected client.
func (h *Hub) NotifyWorkExperienceAdded(studentID, workExperienceID string) {
	if h == nil {
		return
	}

	evt := WorkExperienceAddedEvent{
		Type:             "work_experience_added",
		StudentID:        studentID,
		WorkExperienceID: workExperienceID,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
