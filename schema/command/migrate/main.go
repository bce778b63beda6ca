package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dermatlas/dermatlas-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dermatlas")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	fmt.Println("initialize clinic collection indexes")
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
