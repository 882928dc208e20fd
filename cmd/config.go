package cmd

type Config struct {
	HTTPPort string

	PartnerID string

	AssignmentAPIBaseURL string
	AssignmentAPITimeout string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}
