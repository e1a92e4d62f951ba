package shared

const version = "0.1.0"

func Version() string {
	return version
}
