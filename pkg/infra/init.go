package infra

import (
	"sync"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/configs"
)

var mut sync.Mutex

func InitDBConnectors(config configs.Configs) {
	mut.Lock()
	defer mut.Unlock()
	if SQL == nil {
		initSQLConns(config)
	}
}
