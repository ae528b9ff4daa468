package types

import (
	"strings"
)

// Nation is the <NATION> document the API returns for nation queries.
// Only the shards that were requested are filled in; the others keep
// their zero value.
type Nation struct {
	Id             string     `xml:"id,attr"`
	Name           string     `xml:"NAME"`
	FullName       string     `xml:"FULLNAME"`
	Region         string     `xml:"REGION"`
	Population     uint64     `xml:"POPULATION"`
	Admirable      string     `xml:"ADMIRABLE"`
	Admirables     []string   `xml:"ADMIRABLES>ADMIRABLE"`
	Animal         string     `xml:"ANIMAL"`
	AnimalTrait    string     `xml:"ANIMALTRAIT"`
	Answered       uint64     `xml:"ISSUES_ANSWERED"`
	Banner         string     `xml:"BANNER"`
	Banners        []string   `xml:"BANNERS>BANNER"`
	Capital        string     `xml:"CAPITAL"`
	Category       string     `xml:"CATEGORY"`
	Census         []Scale    `xml:"CENSUS>SCALE"`
	Crime          string     `xml:"CRIME"`
	Currency       string     `xml:"CURRENCY"`
	Leader         string     `xml:"LEADER"`
	Religion       string     `xml:"RELIGION"`
	DbId           uint64     `xml:"DBID"`
	Deaths         []Cause    `xml:"DEATHS>CAUSE"`
	Demonym        string     `xml:"DEMONYM"`
	Demonym2       string     `xml:"DEMONYM2"`
	Demonym2Plural string     `xml:"DEMONYM2PLURAL"`
	Dispatches     uint64     `xml:"DISPATCHES"`
	DispatchList   []Dispatch `xml:"DISPATCHLIST>DISPATCH"`
	Endorsements   string     `xml:"ENDORSEMENTS"`
	Factbooks      uint64     `xml:"FACTBOOKS"`
	FactbookList   []Dispatch `xml:"FACTBOOKLIST>FACTBOOK"`
	FirstLogin     int64      `xml:"FIRSTLOGIN"`
	Flag           string     `xml:"FLAG"`
	Founded        string     `xml:"FOUNDED"`
	FoundedTime    int64      `xml:"FOUNDEDTIME"`
}

// EndorsementList splits the comma separated ENDORSEMENTS shard.
func (n *Nation) EndorsementList() []string {
	if n.Endorsements == "" {
		return nil
	}
	return strings.Split(n.Endorsements, ",")
}

// Cause is one cause of death and its share of deaths, in percent.
type Cause struct {
	Type  string  `xml:"type,attr"`
	Value float64 `xml:",chardata"`
}

// Dispatch describes a dispatch or a factbook entry; factbooks are
// dispatches of the "Factbook" category.
type Dispatch struct {
	Id          uint64 `xml:"id,attr"`
	Title       string `xml:"TITLE"`
	Author      string `xml:"AUTHOR"`
	Category    string `xml:"CATEGORY"`
	Subcategory string `xml:"SUBCATEGORY"`
	Created     int64  `xml:"CREATED"`
	Edited      int64  `xml:"EDITED"`
	Views       uint64 `xml:"VIEWS"`
	Score       uint64 `xml:"SCORE"`
}

// Scale is a single census scale.
type Scale struct {
	Id         int     `xml:"id,attr"`
	Score      float64 `xml:"SCORE"`
	Rank       uint64  `xml:"RANK"`
	RegionRank uint64  `xml:"RRANK"`
}
