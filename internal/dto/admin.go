package dto

type UpdateIntentRequest struct {
	Text   string `json:"text"`
	Intent string `json:"intent"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TrainResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type TrainingJobResponse struct {
	JobID         string  `json:"job_id"`
	Status        string  `json:"status"`
	TrainExamples int     `json:"train_examples"`
	TestExamples  int     `json:"test_examples"`
	Labels        int     `json:"labels"`
	Accuracy      float64 `json:"accuracy"`
	Error         string  `json:"error,omitempty"`
}
