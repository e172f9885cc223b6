package infra

// ConnectionFacade abstracts access to an underlying database connection
type ConnectionFacade interface {
	GetConn() (interface{}, error)
	GetMeta() (map[string]interface{}, error)
	IsLive() bool
}

type DBType string

const (
	DBTypeMySQL DBType = "mysql"
)
