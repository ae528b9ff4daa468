package types

import (
	"github.com/block/nationstates-go/query"
)

// Nation shards, one per field of Nation.
const (
	ShardName           query.Shard = "name"
	ShardFullName       query.Shard = "fullname"
	ShardRegion         query.Shard = "region"
	ShardPopulation     query.Shard = "population"
	ShardAdmirable      query.Shard = "admirable"
	ShardAdmirables     query.Shard = "admirables"
	ShardAnimal         query.Shard = "animal"
	ShardAnimalTrait    query.Shard = "animaltrait"
	ShardAnswered       query.Shard = "answered"
	ShardBanner         query.Shard = "banner"
	ShardBanners        query.Shard = "banners"
	ShardCapital        query.Shard = "capital"
	ShardCategory       query.Shard = "category"
	ShardCensus         query.Shard = "census"
	ShardCrime          query.Shard = "crime"
	ShardCurrency       query.Shard = "currency"
	ShardLeader         query.Shard = "leader"
	ShardReligion       query.Shard = "religion"
	ShardDbId           query.Shard = "dbid"
	ShardDeaths         query.Shard = "deaths"
	ShardDemonym        query.Shard = "demonym"
	ShardDemonym2       query.Shard = "demonym2"
	ShardDemonym2Plural query.Shard = "demonym2plural"
	ShardDispatches     query.Shard = "dispatches"
	ShardDispatchList   query.Shard = "dispatchlist"
	ShardEndorsements   query.Shard = "endorsements"
	ShardFactbooks      query.Shard = "factbooks"
	ShardFactbookList   query.Shard = "factbooklist"
	ShardFirstLogin     query.Shard = "firstlogin"
	ShardFlag           query.Shard = "flag"
	ShardFounded        query.Shard = "founded"
	ShardFoundedTime    query.Shard = "foundedtime"
)
