package orm

import (
	"github.com/coderi421/relstore/orm/internal/valuer"
	"github.com/coderi421/relstore/orm/model"
	"github.com/coderi421/relstore/orm/vendor"
)

type core struct {
	profile    *vendor.Profile // 当前数据库厂商的方言
	r          model.Registry  // 存储 struct 和列映射关系的实例
	valCreator valuer.Creator  // 读写结构体字段的实现
	mdls       []Middleware
}
